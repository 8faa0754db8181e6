package scrapecreators

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	scdomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/scrapecreators/domain"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/scrapecreators/scclient"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/normalizing"
)

type ScrapeCreatorsIntegrator struct {
	cfg    *config.Config
	Client scclient.Client
}

func New(cfg *config.Config, client scclient.Client) *ScrapeCreatorsIntegrator {
	return &ScrapeCreatorsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ScrapeCreatorsIntegrator) Name() string {
	return config.SourceScrapeCreators
}

func (s *ScrapeCreatorsIntegrator) Schema() normalizing.Schema {
	return normalizing.ScrapeCreatorsSchema.WithPageName(s.cfg.Fetch.LibraryPageName)
}

// ProxyCompanyAds valida a consulta do proxy e devolve o corpo da origem sem alterações.
// A chave enviada na requisição vence a configurada.
func (s *ScrapeCreatorsIntegrator) ProxyCompanyAds(ctx context.Context, query scdomain.LibraryQuery) (*scdomain.CompanyAdsResponse, error) {
	if !query.Valid() {
		return nil, &domain.FetchError{
			Kind:    domain.KindInvalidRequest,
			Code:    domain.CodeMissingParameters,
			Message: "Required parameters: pageId, country, active_status",
		}
	}

	query.APIKey = config.ResolveCredential(query.APIKey, s.cfg.ScrapeCreators.APIKey)
	if query.APIKey == "" {
		return nil, &domain.FetchError{
			Kind:    domain.KindInvalidToken,
			Code:    domain.CodeMissingAPIKey,
			Message: "API key is required. Provide it via query parameter or environment variable.",
			Status:  http.StatusUnauthorized,
		}
	}

	return s.Client.GetCompanyAds(ctx, query)
}

// FetchRawAds busca os anúncios da página configurada. A biblioteca não aceita
// janela de datas; apenas o status é repassado.
func (s *ScrapeCreatorsIntegrator) FetchRawAds(ctx context.Context, filters *domain.AdFilters) ([]normalizing.RawItem, error) {
	if s.cfg.ScrapeCreators.APIKey == "" || s.cfg.ScrapeCreators.PageID == "" {
		return nil, domain.NewConfigurationError("SCRAPER_CREATORS_API_KEY and SCRAPER_CREATORS_PAGE_ID must be configured.")
	}

	query := scdomain.LibraryQuery{
		PageID:       s.cfg.ScrapeCreators.PageID,
		Country:      strings.ToUpper(s.cfg.ScrapeCreators.Country),
		ActiveStatus: string(filters.StatusOrAll()),
		APIKey:       s.cfg.ScrapeCreators.APIKey,
	}

	items, err := s.Client.GetAllAds(ctx, query, s.cfg.Fetch.MaxAdsOrDefault())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"page_id": query.PageID,
			"error":   err.Error(),
		}).Error("scrapecreators: falha ao buscar anúncios")
		return nil, err
	}

	return items, nil
}
