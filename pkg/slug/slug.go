package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics descompone los caracteres acentuados y elimina las marcas
// combinantes ("Antena Yagi 12dBi" y "conector-N-hembra" quedan en ASCII plano).
var removeDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make genera un slug de URL a partir de un nombre de producto o categoría.
// Se usa cuando el backend no trae slug propio; nunca devuelve cadena vacía
// salvo que la entrada no contenga ningún carácter alfanumérico.
func Make(name string) string {
	s, _, err := transform.String(removeDiacritics, name)
	if err != nil {
		s = name
	}
	s = strings.ToLower(s)

	var b strings.Builder
	lastDash := true // evita guion inicial
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
