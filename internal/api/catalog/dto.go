package catalog

type ProductDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock"`
	BasePrice   float64 `json:"base_price"`

	// Member pricing; equals BasePrice for anonymous callers.
	FinalPrice      float64 `json:"final_price"`
	DiscountAmount  float64 `json:"discount_amount"`
	DiscountPercent float64 `json:"discount_percent"`
	TierName        string  `json:"tier_name,omitempty"`
}
