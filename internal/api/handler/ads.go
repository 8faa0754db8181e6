package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/adfetching"
	"github.com/vfg2006/ads-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ads-monitor-api/pkg/log"
)

// ListAds responde {ads, total, paging} com os anúncios normalizados
func ListAds(service adfetching.AdFetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := filtersFromQuery(r)
		if err != nil {
			logger.WithError(err).Warn("ads: parâmetros inválidos")
			apiErrors.WriteFetchError(w, err)
			return
		}

		response, err := service.FetchAds(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"error_kind": domain.KindOf(err),
				"error":      err.Error(),
			}).Error("ads: falha ao buscar anúncios")
			apiErrors.WriteFetchError(w, err)
			return
		}

		logger.WithField("ads_fetched", response.Total).Info("ads: anúncios entregues")
		apiErrors.WriteJSON(w, http.StatusOK, response)
	})
}

// GetAdsOverview responde os totais dos cards do painel
func GetAdsOverview(service adfetching.AdFetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := filtersFromQuery(r)
		if err != nil {
			apiErrors.WriteFetchError(w, err)
			return
		}

		overview, err := service.Overview(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("ads: falha ao montar resumo")
			apiErrors.WriteFetchError(w, err)
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, overview)
	})
}

func ListFetchRuns(service adfetching.AdFetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit must be a positive integer.", raw)
				return
			}
			limit = parsed
		}

		runs, err := service.ListRuns(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("ads: falha ao listar execuções")
			apiErrors.WriteFetchError(w, err)
			return
		}

		if runs == nil {
			runs = []*domain.FetchRun{}
		}

		apiErrors.WriteJSON(w, http.StatusOK, map[string]any{
			"runs":  runs,
			"total": len(runs),
		})
	})
}

func filtersFromQuery(r *http.Request) (*domain.AdFilters, error) {
	query := r.URL.Query()
	return domain.NewAdFilters(
		query.Get("status"),
		query.Get("dateFrom"),
		query.Get("dateTo"),
		query.Get("search"),
	)
}
