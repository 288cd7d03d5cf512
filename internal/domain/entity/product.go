package entity

import "github.com/shopspring/decimal"

// ProductType clasifica el producto para decidir cómo se resuelve su precio
// y qué control muestra la UI (selector de largo, de ganancia, etc.).
type ProductType string

const (
	ProductTypeSimple    ProductType = "simple"    // bien simple con precio plano
	ProductTypeCable     ProductType = "cable"     // cable ensamblado: tarifa por pie × largo
	ProductTypeConnector ProductType = "connector" // conector: tabla de precios por contraparte
)

// OptionAxis atributo sobre el que varían las opciones de precio.
// Permite a la capa de presentación elegir el control correcto sin conocer el backend.
type OptionAxis string

const (
	OptionAxisLength OptionAxis = "length" // largos de cable ("10 ft", "25 ft")
	OptionAxisGain   OptionAxis = "gain"   // ganancia de antena ("6dBi", "9dBi")
)

// PriceOption un par (etiqueta, precio): una configuración seleccionable del producto.
type PriceOption struct {
	Label string
	Price decimal.Decimal
}

// Variant variante con precio calculado externamente por la plataforma de comercio.
type Variant struct {
	ID    string
	Name  string
	Price decimal.Decimal // mayor unidad de moneda, ya convertida por el adaptador
}

// Product forma normalizada e independiente del backend. Proyección de solo lectura:
// esta capa nunca crea ni muta productos en los sistemas de origen, y cada petición
// construye instancias frescas a partir de la respuesta del backend activo.
//
// Invariantes: Slug nunca vacío; todo valor monetario está en mayor unidad de
// moneda (la conversión desde centavos ocurre en el adaptador, nunca aquí ni
// en la capa de presentación).
type Product struct {
	ID          string
	Name        string
	Slug        string
	CategoryID  string
	Type        ProductType
	Description string

	// Precio plano (cero si el producto se cotiza por opciones o variantes).
	Price decimal.Decimal
	// Tarifa por pie para cables ensamblados; se combina con las opciones de largo.
	PerFootRate decimal.Decimal
	// Opciones (largo o ganancia) aplanadas desde el backend, etiquetadas con su eje.
	OptionAxis OptionAxis
	Options    []PriceOption
	// Tabla de precios por tipo de contraparte (solo conectores).
	ConnectorPricing map[string]decimal.Decimal
	// Variantes con precio calculado por la plataforma de comercio.
	Variants []Variant

	Images []string // siempre URLs planas; ningún objeto de asset del backend escapa del adaptador
	Tags   []string

	InStock   bool
	Published bool
	Source    string // fuente que produjo esta proyección ("swell", "woocommerce", "localdata")
}
