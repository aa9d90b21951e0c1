package cryptomepay

import (
	"github.com/shopspring/decimal"

	"cryptopay/client"
)

type CreatePaymentRequest struct {
	// OrderID is the merchant's own identifier for the order.
	OrderID string
	Amount  decimal.Decimal
	// NotifyURL receives the webhook when the payment status changes.
	NotifyURL string
	// RedirectURL is optional; the payer is sent there after paying.
	RedirectURL string
	// ChainType defaults to TRC20 when empty.
	ChainType client.ChainType
}

type ListOrdersRequest struct {
	Page      int
	PageSize  int
	Status    client.PaymentStatus
	ChainType client.ChainType
	StartDate string
	EndDate   string
}

// WebhookPayload is the notification the gateway posts to the
// merchant's notify URL.
type WebhookPayload struct {
	TradeID            string               `json:"trade_id"`
	OrderID            string               `json:"order_id"`
	Amount             decimal.Decimal      `json:"amount"`
	ActualAmount       decimal.Decimal      `json:"actual_amount"`
	Token              string               `json:"token"`
	ChainType          client.ChainType     `json:"chain_type"`
	BlockTransactionID string               `json:"block_transaction_id"`
	Status             client.PaymentStatus `json:"status"`
	Signature          string               `json:"signature"`
}
