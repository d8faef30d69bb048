// Package domain holds the entities shared by the storage backends,
// the usecases and the HTTP layer. JSON field names match the wire
// format the cashier frontend expects.
package domain

import "time"

// Payment methods accepted at the till.
const (
	PaymentCash         = "Tunai"
	PaymentQRIS         = "QRIS"
	PaymentBankTransfer = "Transfer Bank"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentQRIS, PaymentBankTransfer:
		return true
	}
	return false
}

// Product is a catalog entry. Price is in the smallest currency unit
// (whole rupiah). Stock may go negative after a sale; the system does
// not clamp at zero.
type Product struct {
	ID       string `json:"id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Stock    int64  `json:"stock"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// TransactionItem is one cart line. Price is captured at time of sale
// and stays fixed even if the catalog price changes later.
type TransactionItem struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"`
}

// Transaction is an immutable sale record. Total is computed once at
// creation and is authoritative; it is never recomputed from Items.
type Transaction struct {
	ID            string            `json:"id"`
	Date          time.Time         `json:"date"`
	Items         []TransactionItem `json:"items"`
	Total         int64             `json:"total"`
	PaymentMethod string            `json:"paymentMethod"`
	CashierName   string            `json:"cashierName"`
}

// StoreSettings is the single-row store configuration.
type StoreSettings struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	LogoURL       string `json:"logoUrl"`
	ReceiptFooter string `json:"receiptFooter"`
}
