package cryptomepay

import (
	"github.com/shopspring/decimal"

	"cryptopay/client"
)

// Responses carry the gateway's envelope verbatim. The client never
// interprets StatusCode; business-level failures are data, not errors.

type PaymentData struct {
	TradeID        string           `json:"trade_id"`
	OrderID        string           `json:"order_id"`
	Amount         decimal.Decimal  `json:"amount"`
	ActualAmount   decimal.Decimal  `json:"actual_amount"`
	Token          string           `json:"token"`
	ChainType      client.ChainType `json:"chain_type"`
	ChainName      string           `json:"chain_name"`
	ExpirationTime int64            `json:"expiration_time"`
	PaymentURL     string           `json:"payment_url"`
}

type PaymentResponse struct {
	StatusCode int          `json:"status_code"`
	Message    string       `json:"message"`
	Data       *PaymentData `json:"data"`
	RequestID  string       `json:"request_id"`
}

type OrderData struct {
	TradeID            string               `json:"trade_id"`
	OrderID            string               `json:"order_id"`
	Amount             decimal.Decimal      `json:"amount"`
	ActualAmount       decimal.Decimal      `json:"actual_amount"`
	Token              string               `json:"token"`
	ChainType          client.ChainType     `json:"chain_type"`
	Status             client.PaymentStatus `json:"status"`
	BlockTransactionID string               `json:"block_transaction_id"`
	CreatedAt          string               `json:"created_at"`
	PaidAt             string               `json:"paid_at"`
}

type OrderResponse struct {
	StatusCode int        `json:"status_code"`
	Message    string     `json:"message"`
	Data       *OrderData `json:"data"`
	RequestID  string     `json:"request_id"`
}

type OrderListData struct {
	List     []OrderData `json:"list"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

type OrderListResponse struct {
	StatusCode int            `json:"status_code"`
	Message    string         `json:"message"`
	Data       *OrderListData `json:"data"`
	RequestID  string         `json:"request_id"`
}

type MerchantData struct {
	MerchantID   int    `json:"merchant_id"`
	MerchantCode string `json:"merchant_code"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Status       string `json:"status"`
	KYCStatus    string `json:"kyc_status"`
	KYCLevel     int    `json:"kyc_level"`
	CreatedAt    string `json:"created_at"`
}

type MerchantResponse struct {
	StatusCode int           `json:"status_code"`
	Message    string        `json:"message"`
	Data       *MerchantData `json:"data"`
	RequestID  string        `json:"request_id"`
}
