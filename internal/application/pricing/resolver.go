package pricing

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/jcastro/rfstore-api/internal/domain/entity"
)

// PriceState estado del precio mostrable.
type PriceState string

const (
	PriceStateSingle PriceState = "single"
	PriceStateRange  PriceState = "range"
	// PriceStateOnRequest centinela explícito: el producto no tiene precio
	// resoluble. Nunca se representa como $0.00 ni como error.
	PriceStateOnRequest PriceState = "on_request"
)

// DisplayPrice precio mostrable calculado a partir de un producto normalizado.
// Con State == single, Min == Max.
type DisplayPrice struct {
	State PriceState
	Min   decimal.Decimal
	Max   decimal.Decimal
}

// Format devuelve la representación para la tienda: "$8.50", "$10.00 - $25.00"
// o "Price on request".
func (d DisplayPrice) Format() string {
	switch d.State {
	case PriceStateSingle:
		return "$" + d.Min.StringFixed(2)
	case PriceStateRange:
		return "$" + d.Min.StringFixed(2) + " - $" + d.Max.StringFixed(2)
	default:
		return "Price on request"
	}
}

// firstNumberRe extrae el primer número decimal de una etiqueta ("10 ft" -> 10,
// "6dBi" -> 6). Si la etiqueta no contiene número, la opción no aporta precio.
var firstNumberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseQuantity extrae la primera cantidad numérica de una etiqueta de opción.
// Devuelve ok == false si no hay número o si la cantidad no es positiva.
func ParseQuantity(label string) (decimal.Decimal, bool) {
	match := firstNumberRe.FindString(label)
	if match == "" {
		return decimal.Zero, false
	}
	q, err := decimal.NewFromString(match)
	if err != nil || !q.IsPositive() {
		return decimal.Zero, false
	}
	return q, true
}

// Resolve calcula el precio mostrable de un producto normalizado aplicando la
// precedencia fija, deteniéndose en la primera regla que produce un valor positivo:
//
//  1. variantes con precio calculado por la plataforma -> rango min/max
//  2. cable ensamblado: tarifa por pie × largo de cada opción -> rango min/max
//  3. conector: mínimo de la tabla de precios por contraparte
//  4. opciones de ganancia -> rango min/max
//  5. precio plano
//  6. centinela "price on request"
func Resolve(p entity.Product) DisplayPrice {
	if dp, ok := fromVariants(p.Variants); ok {
		return dp
	}
	if p.Type == entity.ProductTypeCable {
		if dp, ok := fromLengthOptions(p.PerFootRate, p.Options); ok {
			return dp
		}
	}
	if p.Type == entity.ProductTypeConnector {
		if dp, ok := fromConnectorTable(p.ConnectorPricing); ok {
			return dp
		}
	}
	if p.OptionAxis == entity.OptionAxisGain {
		if dp, ok := fromPricedOptions(p.Options); ok {
			return dp
		}
	}
	if p.Price.IsPositive() {
		return single(p.Price)
	}
	return DisplayPrice{State: PriceStateOnRequest}
}

// ResolveOptions devuelve las opciones del producto con su precio efectivo:
// para cables el precio se deriva como tarifa × cantidad de la etiqueta; las
// etiquetas sin número se conservan con precio cero ("no disponible").
func ResolveOptions(p entity.Product) []entity.PriceOption {
	if p.Type != entity.ProductTypeCable || !p.PerFootRate.IsPositive() {
		return p.Options
	}
	out := make([]entity.PriceOption, 0, len(p.Options))
	for _, opt := range p.Options {
		if opt.Price.IsZero() {
			if qty, ok := ParseQuantity(opt.Label); ok {
				opt.Price = p.PerFootRate.Mul(qty)
			}
		}
		out = append(out, opt)
	}
	return out
}

func fromVariants(variants []entity.Variant) (DisplayPrice, bool) {
	prices := make([]decimal.Decimal, 0, len(variants))
	for _, v := range variants {
		if v.Price.IsPositive() {
			prices = append(prices, v.Price)
		}
	}
	return rangeOf(prices)
}

// fromLengthOptions deriva el precio de cada largo como tarifa × cantidad
// extraída de la etiqueta. Etiquetas sin número se omiten, nunca fallan.
func fromLengthOptions(rate decimal.Decimal, options []entity.PriceOption) (DisplayPrice, bool) {
	if !rate.IsPositive() {
		return DisplayPrice{}, false
	}
	prices := make([]decimal.Decimal, 0, len(options))
	for _, opt := range options {
		qty, ok := ParseQuantity(opt.Label)
		if !ok {
			continue
		}
		prices = append(prices, rate.Mul(qty))
	}
	return rangeOf(prices)
}

func fromConnectorTable(table map[string]decimal.Decimal) (DisplayPrice, bool) {
	var min decimal.Decimal
	found := false
	for _, price := range table {
		if !price.IsPositive() {
			continue
		}
		if !found || price.LessThan(min) {
			min = price
			found = true
		}
	}
	if !found {
		return DisplayPrice{}, false
	}
	return single(min), true
}

func fromPricedOptions(options []entity.PriceOption) (DisplayPrice, bool) {
	prices := make([]decimal.Decimal, 0, len(options))
	for _, opt := range options {
		if opt.Price.IsPositive() {
			prices = append(prices, opt.Price)
		}
	}
	return rangeOf(prices)
}

func rangeOf(prices []decimal.Decimal) (DisplayPrice, bool) {
	if len(prices) == 0 {
		return DisplayPrice{}, false
	}
	min, max := prices[0], prices[0]
	for _, p := range prices[1:] {
		if p.LessThan(min) {
			min = p
		}
		if p.GreaterThan(max) {
			max = p
		}
	}
	if min.Equal(max) {
		return single(min), true
	}
	return DisplayPrice{State: PriceStateRange, Min: min, Max: max}, true
}

func single(p decimal.Decimal) DisplayPrice {
	return DisplayPrice{State: PriceStateSingle, Min: p, Max: p}
}
