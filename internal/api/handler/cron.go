package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ads-monitor-api/pkg/log"
)

const CronJobTypeTokenHealth = "token-health"

// CronJob é o que os handlers precisam de um agendador
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém as cron jobs que podem ser disparadas manualmente
type CronJobServices struct {
	TokenHealthCheck CronJob
}

func (s CronJobServices) byType(cronType string) (CronJob, bool) {
	switch cronType {
	case CronJobTypeTokenHealth:
		return s.TokenHealthCheck, s.TokenHealthCheck != nil
	}
	return nil, false
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		job, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: token-health", cronType)
			return
		}

		log.ForContext(r.Context()).WithField("cron_type", cronType).Info("cron: execução manual solicitada")
		job.TriggerManualSync()

		apiErrors.WriteJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.TokenHealthCheck != nil {
			status[CronJobTypeTokenHealth] = services.TokenHealthCheck.GetStatus()
		}

		apiErrors.WriteJSON(w, http.StatusOK, status)
	})
}
