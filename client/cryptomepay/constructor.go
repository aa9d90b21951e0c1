// Package cryptomepay is a client for the Cryptome Pay REST API. It
// signs mutating requests with the merchant's API secret and verifies
// inbound webhook notifications with the same scheme.
package cryptomepay

import (
	"strings"
	"time"

	fastshot "github.com/opus-domini/fast-shot"
	"github.com/opus-domini/fast-shot/constant/mime"
	"github.com/rs/zerolog"
)

// Version is reported in the User-Agent header.
const Version = "1.0.0"

// Gateway environments
const (
	ProductionURL = "https://api.cryptomepay.com/api/v1"
	SandboxURL    = "https://sandbox.cryptomepay.com/api/v1"
)

const defaultTimeout = 30 * time.Second

type Config struct {
	APIKey    string
	APISecret string
	// BaseURL overrides the production endpoint. A trailing slash is
	// stripped.
	BaseURL string
	// Timeout bounds each request, 30s when zero.
	Timeout time.Duration
	// Logger enables debug logging of requests and responses when set.
	Logger *zerolog.Logger
}

type Client struct {
	config     *Config
	baseURL    string
	timeout    time.Duration
	logger     zerolog.Logger
	httpClient fastshot.ClientHttpMethods
}

func NewClient(config *Config) *Client {
	baseURL := ProductionURL
	if config.BaseURL != "" {
		baseURL = strings.TrimRight(config.BaseURL, "/")
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}
	c := &Client{
		config:  config,
		baseURL: baseURL,
		timeout: timeout,
		logger:  logger,
	}
	c.httpClient = setupHttpClient(baseURL, config.APIKey, timeout)
	return c
}

// BaseURL reports the endpoint the client currently targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UseSandbox points the client at the sandbox environment and returns
// it for chaining. Switching environments is not safe while requests
// are in flight.
func (c *Client) UseSandbox() *Client {
	return c.switchBaseURL(SandboxURL)
}

// UseProduction points the client back at the production environment.
func (c *Client) UseProduction() *Client {
	return c.switchBaseURL(ProductionURL)
}

func (c *Client) switchBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	c.httpClient = setupHttpClient(baseURL, c.config.APIKey, c.timeout)
	return c
}

func setupHttpClient(baseURL string, apiKey string, timeout time.Duration) fastshot.ClientHttpMethods {
	return fastshot.NewClient(baseURL).
		Header().Add("Authorization", "Bearer "+apiKey).
		Header().Add("User-Agent", "cryptopay-go/"+Version).
		Header().AddAccept(mime.JSON).
		Config().SetTimeout(timeout).
		Build()
}
