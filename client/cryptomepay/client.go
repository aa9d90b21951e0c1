package cryptomepay

import (
	"encoding/json"
	"net/http"

	"cryptopay/client"
	"cryptopay/signer"
)

const (
	createTransactionPath = "/order/create-transaction"
	orderQueryPath        = "/order/query"
	merchantOrdersPath    = "/merchant/orders"
	merchantInfoPath      = "/merchant/info"
)

// CreatePayment creates a payment order. The amount is rendered with
// exactly two decimals before signing, the chain defaults to TRC20,
// and redirect_url is sent only when set. The signed parameter set is
// posted verbatim as the JSON body.
func (c *Client) CreatePayment(req *CreatePaymentRequest) (*PaymentResponse, error) {
	chain := req.ChainType
	if chain == "" {
		chain = client.DefaultChain
	}
	params := map[string]string{
		"order_id":   req.OrderID,
		"amount":     formatAmount(req.Amount),
		"notify_url": req.NotifyURL,
		"chain_type": chain.String(),
	}
	if req.RedirectURL != "" {
		params["redirect_url"] = req.RedirectURL
	}
	params[signer.SignatureKey] = signer.Sign(params, c.config.APISecret)

	var data PaymentResponse
	if err := c.post(createTransactionPath, params, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// QueryPaymentByTradeID looks up a payment by the gateway-assigned id.
func (c *Client) QueryPaymentByTradeID(tradeID string) (*OrderResponse, error) {
	return c.queryPayment("trade_id", tradeID)
}

// QueryPaymentByOrderID looks up a payment by the merchant-assigned id.
func (c *Client) QueryPaymentByOrderID(orderID string) (*OrderResponse, error) {
	return c.queryPayment("order_id", orderID)
}

func (c *Client) queryPayment(param string, value string) (*OrderResponse, error) {
	query := client.NewQueryBuilder().Add(param, value)
	var data OrderResponse
	if err := c.get(orderQueryPath+"?"+query.String(), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ListOrders pages through the merchant's orders. Page defaults to 1
// and page size to 20; the filters are sent only when set.
func (c *Client) ListOrders(req *ListOrdersRequest) (*OrderListResponse, error) {
	if req == nil {
		req = &ListOrdersRequest{}
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	query := client.NewQueryBuilder().
		Add("page", page).
		Add("page_size", pageSize).
		Add("chain_type", req.ChainType.String()).
		Add("start_date", req.StartDate).
		Add("end_date", req.EndDate)
	if req.Status != 0 {
		query.Add("status", int(req.Status))
	}

	var data OrderListResponse
	if err := c.get(merchantOrdersPath+"?"+query.String(), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetMerchantInfo fetches the merchant profile.
func (c *Client) GetMerchantInfo() (*MerchantResponse, error) {
	var data MerchantResponse
	if err := c.get(merchantInfoPath, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// VerifyWebhookSignature checks the signature entry of a decoded
// webhook payload against the client's API secret. It never returns an
// error: payloads without a signature entry are simply rejected.
func (c *Client) VerifyWebhookSignature(payload map[string]any) bool {
	return signer.Verify(webhookParams(payload), c.config.APISecret)
}

// VerifyWebhookBody decodes a raw webhook body and verifies its
// signature. Malformed JSON is rejected.
func (c *Client) VerifyWebhookBody(body []byte) bool {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return false
	}
	return c.VerifyWebhookSignature(payload)
}

// ParseWebhook verifies a raw webhook body and decodes it into the
// typed payload.
func (c *Client) ParseWebhook(body []byte) (*WebhookPayload, error) {
	if !c.VerifyWebhookBody(body) {
		return nil, &SDKError{Message: "webhook signature verification failed"}
	}
	var payload WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &SDKError{Message: "webhook payload does not match the expected shape"}
	}
	return &payload, nil
}

func (c *Client) get(path string, out any) error {
	c.logRequest(http.MethodGet, path)
	resp, err := c.httpClient.GET(path).Send()
	if err != nil {
		return newNetworkError(err)
	}
	raw, readErr := resp.Body().AsString()
	return c.decodeBody(http.MethodGet, path, resp.Status().Code(), raw, readErr, out)
}

func (c *Client) post(path string, body any, out any) error {
	c.logRequest(http.MethodPost, path)
	resp, err := c.httpClient.POST(path).
		Header().Add("Content-Type", "application/json").
		Body().AsJSON(body).
		Send()
	if err != nil {
		return newNetworkError(err)
	}
	raw, readErr := resp.Body().AsString()
	return c.decodeBody(http.MethodPost, path, resp.Status().Code(), raw, readErr, out)
}

// decodeBody surfaces a non-JSON body as an APIError carrying the HTTP
// status. Well-formed JSON is returned as-is whatever the status; the
// caller owns interpretation of status_code.
func (c *Client) decodeBody(method string, path string, status int, raw string, readErr error, out any) error {
	if readErr != nil {
		return newNetworkError(readErr)
	}
	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Str("body", raw).
		Msg("gateway response")
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &APIError{
			SDKError:   SDKError{Message: "gateway returned a body that is not valid JSON"},
			StatusCode: status,
		}
	}
	return nil
}

func (c *Client) logRequest(method string, path string) {
	c.logger.Debug().
		Str("method", method).
		Str("url", c.baseURL+path).
		Msg("gateway request")
}
