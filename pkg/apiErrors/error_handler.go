package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos que não nascem de um FetchError
const (
	ErrInvalidMethod  = "INVALID_METHOD"
	ErrInvalidRequest = "INVALID_REQUEST"
	ErrNotFound       = "NOT_FOUND"
	ErrInternalServer = "INTERNAL_ERROR"
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidMethod:  http.StatusMethodNotAllowed,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrNotFound:       http.StatusNotFound,
	ErrInternalServer: http.StatusInternalServerError,
}

// APIError é o corpo padrão de erro: {error, message, details?, status?}
type APIError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	// Status é o status HTTP devolvido pela origem, quando houver
	Status int `json:"status,omitempty"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	write(w, status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// WriteFetchError traduz um erro da busca para o status e corpo correspondentes.
// Erros fora da taxonomia viram INTERNAL_ERROR.
func WriteFetchError(w http.ResponseWriter, err error) {
	fetchErr := AsFetchError(err)
	if fetchErr == nil {
		logrus.WithError(err).Error("erro não classificado")
		WriteError(w, ErrInternalServer, "Erro interno do servidor", nil)
		return
	}

	write(w, fetchErr.HTTPStatus(), FromFetchError(fetchErr))
}

func FromFetchError(fetchErr *domain.FetchError) APIError {
	apiErr := APIError{
		Code:    fetchErr.WireCode(),
		Message: fetchErr.Message,
		Details: fetchErr.Details,
	}

	if fetchErr.Kind != domain.KindConfiguration && fetchErr.Kind != domain.KindInvalidRequest {
		apiErr.Status = fetchErr.Status
	}

	return apiErr
}

func AsFetchError(err error) *domain.FetchError {
	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr
	}
	return nil
}

// WriteJSON escreve o corpo com o status informado
func WriteJSON(w http.ResponseWriter, status int, body any) {
	write(w, status, body)
}

func write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("erro ao escrever resposta")
	}
}
