package shipping

import (
	"context"

	"github.com/jcastro/rfstore-api/internal/application/dto"
	"github.com/jcastro/rfstore-api/pkg/logger"
)

// Rate una opción de envío cotizada por el proveedor externo.
type Rate struct {
	Carrier      string
	Service      string
	AmountCents  int64
	Currency     string
	EstimateDays int
}

// Destination destino y peso del carrito.
type Destination struct {
	CountryCode string
	PostalCode  string
	WeightGrams int
}

// RateProvider puerto de salida hacia el proveedor de tarifas de envío.
type RateProvider interface {
	GetRates(ctx context.Context, dest Destination) ([]Rate, error)
}

// UseCase cotización de envío. Envoltura delgada: si el proveedor falla,
// degrada a lista vacía en lugar de propagar el error (el front muestra
// "tarifas no disponibles", no una página de error).
type UseCase struct {
	provider RateProvider
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(provider RateProvider, log *logger.Logger) *UseCase {
	return &UseCase{provider: provider, log: log.Component("shipping")}
}

// GetRates cotiza las opciones de envío para el destino dado.
func (uc *UseCase) GetRates(ctx context.Context, in dto.ShippingRateRequest) dto.ShippingRateListResponse {
	out := dto.ShippingRateListResponse{Rates: []dto.ShippingRateResponse{}}
	if uc.provider == nil {
		return out
	}
	rates, err := uc.provider.GetRates(ctx, Destination{
		CountryCode: in.CountryCode,
		PostalCode:  in.PostalCode,
		WeightGrams: in.WeightGrams,
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("country", in.CountryCode).Msg("proveedor de tarifas no disponible")
		return out
	}
	for _, r := range rates {
		out.Rates = append(out.Rates, dto.ShippingRateResponse{
			Carrier:      r.Carrier,
			Service:      r.Service,
			AmountCents:  r.AmountCents,
			Currency:     r.Currency,
			EstimateDays: r.EstimateDays,
		})
	}
	return out
}
