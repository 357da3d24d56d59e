package payment

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// Intent holds the fields of a created payment intent that the
// application cares about, plus the raw provider response.
type Intent struct {
	ID           string
	ClientSecret string
	Raw          []byte
}

// Gateway creates payment holds with an external card processor.
// Controllers depend on this interface so tests can substitute a stub.
type Gateway interface {
	CreateIntent(amount int64, currency string) (*Intent, error)
}

// StripeClient implements Gateway against the Stripe payment intents API
type StripeClient struct {
	baseURL   string
	secretKey string
	client    *resty.Client
}

func NewStripeClient(baseURL, secretKey string) *StripeClient {
	return &StripeClient{
		baseURL:   baseURL,
		secretKey: secretKey,
		client:    resty.New(),
	}
}

// CreateIntent requests a card-only payment hold for the given amount
// (minor currency units)
func (s *StripeClient) CreateIntent(amount int64, currency string) (*Intent, error) {
	resp, err := s.client.R().
		SetHeader("Authorization", "Bearer "+s.secretKey).
		SetFormData(map[string]string{
			"amount":                 strconv.FormatInt(amount, 10),
			"currency":               currency,
			"payment_method_types[]": "card",
		}).
		Post(s.baseURL + "/v1/payment_intents")
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment provider: %v", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("payment provider error (%d): %s", resp.StatusCode(), resp.String())
	}

	var intentResp struct {
		ID           string `json:"id"`
		ClientSecret string `json:"client_secret"`
	}
	if err := json.Unmarshal(resp.Body(), &intentResp); err != nil {
		return nil, fmt.Errorf("failed to parse payment provider response: %v", err)
	}

	if intentResp.ClientSecret == "" {
		return nil, fmt.Errorf("payment provider returned empty client secret")
	}

	return &Intent{
		ID:           intentResp.ID,
		ClientSecret: intentResp.ClientSecret,
		Raw:          resp.Body(),
	}, nil
}
