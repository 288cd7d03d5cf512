package entity

// CartItem línea del carrito del cliente tal como la envía el front para checkout.
// El precio unitario viaja en centavos (unidad menor) porque así lo exige el
// procesador de pagos; esta capa no lo reconvierte.
type CartItem struct {
	ID             string
	Name           string
	UnitPriceCents int64
	Quantity       int64
	// Metadata configuración de cables a medida (largo, conectores en cada extremo).
	Metadata map[string]string
}
