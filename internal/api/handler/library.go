package handler

import (
	"net/http"

	scdomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/scrapecreators/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/adfetching"
	"github.com/vfg2006/ads-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ads-monitor-api/pkg/log"
)

// ProxyLibraryAds repassa a consulta à biblioteca de anúncios e devolve o corpo como veio
func ProxyLibraryAds(proxy adfetching.LibraryProxy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		libraryQuery := scdomain.LibraryQuery{
			PageID:       query.Get("pageId"),
			Country:      query.Get("country"),
			ActiveStatus: query.Get("active_status"),
			Cursor:       query.Get("cursor"),
			APIKey:       query.Get("apiKey"),
		}

		response, err := proxy.ProxyCompanyAds(r.Context(), libraryQuery)
		if err != nil {
			logger.WithFields(log.Fields{
				"page_id": libraryQuery.PageID,
				"error":   err.Error(),
			}).Error("library: falha no proxy da biblioteca de anúncios")
			apiErrors.WriteFetchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(response.Body); err != nil {
			logger.WithError(err).Warn("library: erro ao escrever resposta")
		}
	})
}
