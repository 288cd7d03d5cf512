package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PreviewClaims incluye los claims estándar JWT más el alcance del modo preview.
// El token lo emite el panel de contenidos y permite ver productos no publicados.
type PreviewClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"` // siempre "preview"
}

// GeneratePreview genera un token firmado de modo preview con expiración en minutos.
func GeneratePreview(secret, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := PreviewClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Scope: "preview",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParsePreview valida el token y confirma que el alcance sea "preview".
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func ParsePreview(secret, tokenString string) error {
	if secret == "" {
		return fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &PreviewClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	claims, ok := token.Claims.(*PreviewClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("claims inválidos")
	}
	if claims.Scope != "preview" {
		return fmt.Errorf("alcance inválido: %s", claims.Scope)
	}
	return nil
}
