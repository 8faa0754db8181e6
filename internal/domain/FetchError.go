package domain

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindConfiguration    ErrorKind = "CONFIGURATION_ERROR"
	KindInvalidRequest   ErrorKind = "INVALID_REQUEST"
	KindInvalidToken     ErrorKind = "INVALID_TOKEN"
	KindPermissionDenied ErrorKind = "PERMISSION_DENIED"
	KindRateLimit        ErrorKind = "RATE_LIMIT"
	KindUpstream         ErrorKind = "META_API_ERROR"
	KindNetwork          ErrorKind = "NETWORK_ERROR"
)

// Códigos específicos enviados ao cliente quando diferem do tipo
const (
	CodeInvalidDateFormat  = "INVALID_DATE_FORMAT"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodeMissingParameters  = "MISSING_PARAMETERS"
	CodeMissingAPIKey      = "MISSING_API_KEY"
	CodeLibraryUpstream    = "UPSTREAM_ERROR"
	CodeAccountUnavailable = "ACCOUNT_UNAVAILABLE"
)

var kindStatus = map[ErrorKind]int{
	KindConfiguration:    http.StatusInternalServerError,
	KindInvalidRequest:   http.StatusBadRequest,
	KindInvalidToken:     http.StatusUnauthorized,
	KindPermissionDenied: http.StatusForbidden,
	KindRateLimit:        http.StatusTooManyRequests,
	KindUpstream:         http.StatusBadGateway,
	KindNetwork:          http.StatusBadGateway,
}

// FetchError é o erro tipado de toda a cadeia de busca de anúncios.
type FetchError struct {
	Kind ErrorKind
	// Code sobrescreve o código enviado ao cliente; vazio usa Kind
	Code    string
	Message string
	// Status é o status HTTP devolvido pela origem, quando houver
	Status  int
	Details any
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) WireCode() string {
	if e.Code != "" {
		return e.Code
	}
	return string(e.Kind)
}

func (e *FetchError) HTTPStatus() int {
	if status, ok := kindStatus[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func NewConfigurationError(message string) *FetchError {
	return &FetchError{Kind: KindConfiguration, Message: message}
}

func NewNetworkError(err error) *FetchError {
	return &FetchError{
		Kind:    KindNetwork,
		Message: "Erro de rede ao contatar a origem dos anúncios",
		Err:     err,
	}
}

// ClassifyUpstreamStatus traduz um status não-2xx da origem para o erro tipado.
// upstreamMessage só é usada no caso genérico, quando a origem explica a falha.
func ClassifyUpstreamStatus(status int, upstreamMessage string, details any) *FetchError {
	fetchErr := &FetchError{Status: status, Details: details}

	switch status {
	case http.StatusUnauthorized:
		fetchErr.Kind = KindInvalidToken
		fetchErr.Message = "Token de acesso inválido ou expirado."
	case http.StatusForbidden:
		fetchErr.Kind = KindPermissionDenied
		fetchErr.Message = "Sem permissão para acessar esta conta de anúncios."
	case http.StatusTooManyRequests:
		fetchErr.Kind = KindRateLimit
		fetchErr.Message = "Limite de requisições excedido."
	default:
		fetchErr.Kind = KindUpstream
		fetchErr.Message = "Erro ao buscar dados da Meta API"
		if upstreamMessage != "" {
			fetchErr.Message = upstreamMessage
		}
	}

	return fetchErr
}

// KindOf retorna o tipo do erro, ou vazio quando não é um FetchError.
func KindOf(err error) ErrorKind {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind
	}
	return ""
}
