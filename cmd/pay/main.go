// Command pay runs a smoke pass against the Cryptome Pay gateway:
// create a payment, query it back, list recent orders, fetch the
// merchant profile. Credentials come from the environment; set
// CRYPTOPAY_SANDBOX to any value to target the sandbox.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"cryptopay/client"
	"cryptopay/client/cryptomepay"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if os.Getenv("CRYPTOPAY_DEBUG") != "" {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	apiKey := os.Getenv("CRYPTOPAY_API_KEY")
	apiSecret := os.Getenv("CRYPTOPAY_API_SECRET")
	if apiKey == "" || apiSecret == "" {
		logger.Fatal().Msg("CRYPTOPAY_API_KEY and CRYPTOPAY_API_SECRET must be set")
	}

	pay := cryptomepay.NewClient(&cryptomepay.Config{
		APIKey:    apiKey,
		APISecret: apiSecret,
		Logger:    &logger,
	})
	if os.Getenv("CRYPTOPAY_SANDBOX") != "" {
		pay.UseSandbox()
	}
	logger.Info().Str("base_url", pay.BaseURL()).Msg("gateway selected")

	orderID := "demo-" + uuid.NewString()
	created, err := pay.CreatePayment(&cryptomepay.CreatePaymentRequest{
		OrderID:   orderID,
		Amount:    decimal.RequireFromString("1.50"),
		NotifyURL: "https://example.com/webhooks/cryptopay",
		ChainType: client.CHAIN_TRC20,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("create payment failed")
	}
	if created.Data == nil {
		color.Red("gateway rejected payment: %d %s", created.StatusCode, created.Message)
		os.Exit(1)
	}
	color.Green("payment created: trade_id=%s pay at %s", created.Data.TradeID, created.Data.PaymentURL)

	order, err := pay.QueryPaymentByOrderID(orderID)
	if err != nil {
		logger.Fatal().Err(err).Msg("query payment failed")
	}
	if order.Data != nil {
		color.Cyan("order %s: %s on %s", order.Data.OrderID, order.Data.Status, order.Data.ChainType)
	}

	orders, err := pay.ListOrders(&cryptomepay.ListOrdersRequest{PageSize: 5})
	if err != nil {
		logger.Fatal().Err(err).Msg("list orders failed")
	}
	if orders.Data != nil {
		color.Cyan("showing %d of %d orders", len(orders.Data.List), orders.Data.Total)
		for _, o := range orders.Data.List {
			color.White("  %s  %s  %s", o.TradeID, o.Amount.StringFixed(2), o.Status)
		}
	}

	merchant, err := pay.GetMerchantInfo()
	if err != nil {
		logger.Fatal().Err(err).Msg("merchant info failed")
	}
	if merchant.Data != nil {
		color.Green("merchant %s (%s), kyc level %d", merchant.Data.Name, merchant.Data.MerchantCode, merchant.Data.KYCLevel)
	}
}
