package models

import "github.com/shopspring/decimal"

// CartItem is a session-lifetime line item held in the visitor's cookie
// session. Cart contents are never persisted; they vanish with the session.
type CartItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}
