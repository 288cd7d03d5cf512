package shipping_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/rfstore-api/internal/application/dto"
	"github.com/jcastro/rfstore-api/internal/application/shipping"
	"github.com/jcastro/rfstore-api/pkg/logger"
)

type fakeProvider struct {
	rates []shipping.Rate
	err   error
}

func (f *fakeProvider) GetRates(ctx context.Context, dest shipping.Destination) ([]shipping.Rate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rates, nil
}

func TestGetRates_ProveedorResponde(t *testing.T) {
	provider := &fakeProvider{rates: []shipping.Rate{
		{Carrier: "UPS", Service: "Ground", AmountCents: 1250, Currency: "USD", EstimateDays: 5},
	}}
	uc := shipping.NewUseCase(provider, logger.Nop())

	out := uc.GetRates(context.Background(), dto.ShippingRateRequest{CountryCode: "US", WeightGrams: 900})

	require.Len(t, out.Rates, 1)
	assert.Equal(t, "UPS", out.Rates[0].Carrier)
	assert.Equal(t, int64(1250), out.Rates[0].AmountCents)
}

// El fallo del proveedor degrada a lista vacía: el front muestra "tarifas no
// disponibles" en vez de una página de error.
func TestGetRates_FalloDelProveedorDegradaAVacio(t *testing.T) {
	uc := shipping.NewUseCase(&fakeProvider{err: errors.New("timeout")}, logger.Nop())

	out := uc.GetRates(context.Background(), dto.ShippingRateRequest{CountryCode: "US"})

	assert.NotNil(t, out.Rates)
	assert.Empty(t, out.Rates)
}

func TestGetRates_SinProveedorConfigurado(t *testing.T) {
	uc := shipping.NewUseCase(nil, logger.Nop())

	out := uc.GetRates(context.Background(), dto.ShippingRateRequest{CountryCode: "MX"})
	assert.Empty(t, out.Rates)
}
