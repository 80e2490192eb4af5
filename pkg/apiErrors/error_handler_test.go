package apiErrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "Validação retorna 400", code: ErrMissingRequiredData, wantStatus: http.StatusBadRequest},
		{name: "Erro interno retorna 500", code: ErrInternalServer, wantStatus: http.StatusInternalServerError},
		{name: "Código desconhecido retorna 500", code: "XXX_999", wantStatus: http.StatusInternalServerError},
		{name: "Token inválido retorna 401", code: ErrInvalidToken, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "falhou", "detalhe")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "falhou", body["error"])
			assert.Equal(t, "detalhe", body["details"])
			assert.Equal(t, tt.code, body["code"])
		})
	}
}

func TestFromError(t *testing.T) {
	apiErr := FromError(errors.New("conexão recusada"), ErrDatabaseOperation, "Erro ao consultar")
	assert.Equal(t, "Erro ao consultar", apiErr.Error)
	assert.Equal(t, "conexão recusada", apiErr.Details)

	apiErr = FromError(nil, ErrDatabaseOperation, "ignorado")
	assert.Equal(t, ErrInternalServer, apiErr.Code)
}

func TestWriteFromError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteFromError(rec, errors.New("pq: connection refused"), ErrDatabaseOperation, "Erro ao consultar")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Erro ao consultar", body["error"])
	assert.Equal(t, ErrDatabaseOperation, body["code"])
	assert.Equal(t, "pq: connection refused", body["details"])
}
