package checkout

import (
	"context"

	"github.com/jcastro/rfstore-api/internal/application/dto"
	"github.com/jcastro/rfstore-api/internal/domain"
	"github.com/jcastro/rfstore-api/internal/domain/entity"
)

// Session sesión de pago creada en el procesador.
type Session struct {
	ID  string
	URL string
}

// PaymentGateway puerto de salida hacia el procesador de pagos. El caso de uso
// solo conoce este contrato, no el SDK concreto (DIP). Esta capa no captura
// pagos: únicamente crea la sesión y delega el resto al procesador.
type PaymentGateway interface {
	CreateSession(ctx context.Context, items []entity.CartItem, customerEmail string) (*Session, error)
}

// UseCase creación de la sesión de checkout a partir del carrito del cliente.
type UseCase struct {
	gateway PaymentGateway
}

// NewUseCase construye el caso de uso.
func NewUseCase(gateway PaymentGateway) *UseCase {
	return &UseCase{gateway: gateway}
}

// CreateSession valida las líneas del carrito y crea la sesión de pago.
func (uc *UseCase) CreateSession(ctx context.Context, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.CartItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Name == "" || it.UnitPriceCents <= 0 || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.CartItem{
			ID:             it.ID,
			Name:           it.Name,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
			Metadata:       it.Metadata,
		})
	}
	session, err := uc.gateway.CreateSession(ctx, items, in.CustomerEmail)
	if err != nil {
		return nil, err
	}
	return &dto.CheckoutResponse{SessionID: session.ID, URL: session.URL}, nil
}
