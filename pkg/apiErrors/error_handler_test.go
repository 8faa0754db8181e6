package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
)

func TestWriteFetchError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Data inválida retorna 400",
			err:            &domain.FetchError{Kind: domain.KindInvalidRequest, Code: domain.CodeInvalidDateFormat, Message: "dateFrom must be in YYYY-MM-DD format.", Status: 999},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"INVALID_DATE_FORMAT","message":"dateFrom must be in YYYY-MM-DD format."}`,
		},
		{
			name:           "Configuração ausente retorna 500",
			err:            domain.NewConfigurationError("META_ACCESS_TOKEN and META_AD_ACCOUNT_ID must be configured."),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"CONFIGURATION_ERROR","message":"META_ACCESS_TOKEN and META_AD_ACCOUNT_ID must be configured."}`,
		},
		{
			name:           "Token inválido leva os detalhes da origem",
			err:            domain.ClassifyUpstreamStatus(http.StatusUnauthorized, "bad", map[string]any{"error": map[string]any{"code": 190}}),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"INVALID_TOKEN","message":"Token de acesso inválido ou expirado.","details":{"error":{"code":190}},"status":401}`,
		},
		{
			name:           "Erro genérico da origem retorna 502",
			err:            domain.ClassifyUpstreamStatus(http.StatusInternalServerError, "boom", nil),
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"META_API_ERROR","message":"boom","status":500}`,
		},
		{
			name:           "Erro de rede retorna 502",
			err:            domain.NewNetworkError(errors.New("dial tcp")),
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"NETWORK_ERROR","message":"Erro de rede ao contatar a origem dos anúncios"}`,
		},
		{
			name:           "Erro desconhecido retorna 500",
			err:            errors.New("panic"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"INTERNAL_ERROR","message":"Erro interno do servidor"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			WriteFetchError(recorder, tt.err)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, recorder.Body.String())
		})
	}
}

func TestWriteError_MetodoInvalido(t *testing.T) {
	recorder := httptest.NewRecorder()

	WriteError(recorder, ErrInvalidMethod, "Only GET requests are allowed.", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	assert.JSONEq(t, `{"error":"INVALID_METHOD","message":"Only GET requests are allowed."}`, recorder.Body.String())
}
