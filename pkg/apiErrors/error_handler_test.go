package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		status int
	}{
		{name: "Filtro inválido", code: ErrInvalidFilter, status: http.StatusBadRequest},
		{name: "Token inválido", code: ErrInvalidToken, status: http.StatusUnauthorized},
		{name: "Limite de requisições", code: ErrTooManyRequests, status: http.StatusTooManyRequests},
		{name: "Job em andamento", code: ErrJobAlreadyRunning, status: http.StatusConflict},
		{name: "Código desconhecido", code: "XYZ_999", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "periodo"})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidFilter).Code)

	apiErr := FromError(errors.New("período inválido"), ErrInvalidFilter)
	assert.Equal(t, ErrInvalidFilter, apiErr.Code)
	assert.Equal(t, "período inválido", apiErr.Message)
}
