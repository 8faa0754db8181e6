package handler

import (
	"net/http"

	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/adfetching"
	"github.com/vfg2006/ads-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ads-monitor-api/pkg/log"
)

// IntegrationHealth verifica token e conta da Meta. As falhas seguem o formato
// {status: "error", message, ...} em vez do corpo de erro padrão.
func IntegrationHealth(checker adfetching.HealthChecker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		health, err := checker.CheckHealth(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"error_kind": domain.KindOf(err),
				"error":      err.Error(),
			}).Warn("health: integração com problemas")

			status, body := healthErrorBody(err)
			apiErrors.WriteJSON(w, status, body)
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, health)
	})
}

func healthErrorBody(err error) (int, map[string]any) {
	fetchErr := apiErrors.AsFetchError(err)
	if fetchErr == nil {
		return http.StatusInternalServerError, map[string]any{
			"status":  "error",
			"message": "Erro ao verificar status da integração",
		}
	}

	body := map[string]any{
		"status":  "error",
		"message": fetchErr.Message,
	}

	switch fetchErr.Kind {
	case domain.KindConfiguration:
		body["configured"] = fetchErr.Details
	case domain.KindInvalidToken:
		body["token"] = fetchErr.Details
	case domain.KindPermissionDenied:
		if details, ok := fetchErr.Details.(map[string]any); ok {
			for key, value := range details {
				body[key] = value
			}
		}
	}

	return fetchErr.HTTPStatus(), body
}
