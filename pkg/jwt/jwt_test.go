package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jcastro/rfstore-api/pkg/jwt"
)

const testSecret = "preview-secret-for-tests"

func TestGenerateYParsePreview_TokenValido(t *testing.T) {
	token, err := pkgjwt.GeneratePreview(testSecret, "rfstore-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, pkgjwt.ParsePreview(testSecret, token))
}

func TestParsePreview_FirmaIncorrecta(t *testing.T) {
	token, err := pkgjwt.GeneratePreview(testSecret, "rfstore-test", 60)
	require.NoError(t, err)

	assert.Error(t, pkgjwt.ParsePreview("otro-secret", token))
}

func TestParsePreview_TokenExpirado(t *testing.T) {
	token, err := pkgjwt.GeneratePreview(testSecret, "rfstore-test", -5)
	require.NoError(t, err)

	assert.Error(t, pkgjwt.ParsePreview(testSecret, token))
}

func TestParsePreview_BasuraNoEsToken(t *testing.T) {
	assert.Error(t, pkgjwt.ParsePreview(testSecret, "no-es-un-jwt"))
}

func TestGeneratePreview_SecretVacio(t *testing.T) {
	_, err := pkgjwt.GeneratePreview("", "rfstore-test", 60)
	assert.Error(t, err)
}
