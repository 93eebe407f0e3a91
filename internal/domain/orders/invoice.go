package orders

import (
	"crypto/rand"
	"fmt"
	"time"
)

const invoiceSuffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewInvoiceNumber builds a human-readable invoice number for an approval,
// e.g. "INV/20240131/7QX2". The date prefix keeps the books scannable, the
// random suffix keeps same-day approvals unique.
func NewInvoiceNumber(now time.Time) string {
	b := make([]byte, 4)
	rand.Read(b)
	for i := range b {
		b[i] = invoiceSuffixAlphabet[int(b[i])%len(invoiceSuffixAlphabet)]
	}
	return fmt.Sprintf("INV/%s/%s", now.Format("20060102"), string(b))
}
