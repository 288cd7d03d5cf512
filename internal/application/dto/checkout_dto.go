package dto

// CartItemRequest línea del carrito tal como la envía el front.
// El precio unitario viaja en centavos, como lo exige el procesador de pagos.
type CartItemRequest struct {
	ID             string            `json:"id"`
	Name           string            `json:"name" validate:"required"`
	UnitPriceCents int64             `json:"unit_price_cents" validate:"required,gt=0"`
	Quantity       int64             `json:"quantity" validate:"required,gt=0"`
	Metadata       map[string]string `json:"metadata,omitempty"` // configuración de cables a medida
}

// CheckoutRequest entrada para crear la sesión de pago.
type CheckoutRequest struct {
	Items         []CartItemRequest `json:"items" validate:"required,min=1"`
	CustomerEmail string            `json:"customer_email,omitempty"`
}

// CheckoutResponse sesión de pago creada; el front redirige a URL.
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// ShippingRateRequest destino y peso del carrito para cotizar envío.
type ShippingRateRequest struct {
	CountryCode string `json:"country_code" validate:"required,len=2"`
	PostalCode  string `json:"postal_code"`
	WeightGrams int    `json:"weight_grams" validate:"gt=0"`
}

// ShippingRateResponse una opción de envío cotizada.
type ShippingRateResponse struct {
	Carrier      string `json:"carrier"`
	Service      string `json:"service"`
	AmountCents  int64  `json:"amount_cents"`
	Currency     string `json:"currency"`
	EstimateDays int    `json:"estimate_days,omitempty"`
}

// ShippingRateListResponse lista de opciones; vacía si el proveedor no responde.
type ShippingRateListResponse struct {
	Rates []ShippingRateResponse `json:"rates"`
}
