package shiprates

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"github.com/jcastro/rfstore-api/internal/application/shipping"
	"github.com/jcastro/rfstore-api/pkg/config"
)

var _ shipping.RateProvider = (*Client)(nil)

// Client implementación del puerto RateProvider contra el proveedor externo de
// tarifas de envío (API REST con API key). Envoltura delgada: el caso de uso
// degrada a lista vacía si esto falla.
type Client struct {
	http *resty.Client
}

// NewClient construye el cliente.
func NewClient(cfg config.ShippingConfig, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(timeout).
			SetHeader("Authorization", "Bearer "+cfg.APIKey).
			SetHeader("Accept", "application/json"),
	}
}

type rateRequest struct {
	CountryCode string `json:"country_code"`
	PostalCode  string `json:"postal_code,omitempty"`
	WeightGrams int    `json:"weight_grams"`
}

type rateResponse struct {
	Rates []struct {
		Carrier      string `json:"carrier"`
		Service      string `json:"service"`
		AmountCents  int64  `json:"amount_cents"`
		Currency     string `json:"currency"`
		EstimateDays int    `json:"estimate_days"`
	} `json:"rates"`
}

// GetRates cotiza las opciones de envío para el destino.
func (c *Client) GetRates(ctx context.Context, dest shipping.Destination) ([]shipping.Rate, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(rateRequest{
			CountryCode: dest.CountryCode,
			PostalCode:  dest.PostalCode,
			WeightGrams: dest.WeightGrams,
		}).
		SetResult(&rateResponse{}).
		Post("/v1/rates")
	if err != nil {
		return nil, fmt.Errorf("shiprates: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("shiprates: HTTP %d", resp.StatusCode())
	}

	body := resp.Result().(*rateResponse)
	rates := make([]shipping.Rate, 0, len(body.Rates))
	for _, r := range body.Rates {
		rates = append(rates, shipping.Rate{
			Carrier:      r.Carrier,
			Service:      r.Service,
			AmountCents:  r.AmountCents,
			Currency:     r.Currency,
			EstimateDays: r.EstimateDays,
		})
	}
	return rates, nil
}
