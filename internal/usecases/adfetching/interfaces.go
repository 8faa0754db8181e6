package adfetching

import (
	"context"

	scdomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/scrapecreators/domain"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/normalizing"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// Source é uma origem de anúncios brutos; as implementações são intercambiáveis.
type Source interface {
	// Name identifica a origem nos logs e no histórico de buscas
	Name() string
	// Schema descreve o formato dos itens devolvidos por FetchRawAds
	Schema() normalizing.Schema
	FetchRawAds(ctx context.Context, filters *domain.AdFilters) ([]normalizing.RawItem, error)
}

// HealthChecker verifica token e conta de anúncios da integração com a Meta
type HealthChecker interface {
	CheckHealth(ctx context.Context) (*domain.IntegrationHealth, error)
}

// AdFetcher é o caso de uso exposto aos handlers, à CLI e ao handler serverless
type AdFetcher interface {
	FetchAds(ctx context.Context, filters *domain.AdFilters) (*domain.AdsResponse, error)
	Overview(ctx context.Context, filters *domain.AdFilters) (*domain.AdsOverview, error)
	ListRuns(ctx context.Context, limit int) ([]*domain.FetchRun, error)
}

// LibraryProxy repassa consultas à biblioteca de anúncios sem normalizar a resposta
type LibraryProxy interface {
	ProxyCompanyAds(ctx context.Context, query scdomain.LibraryQuery) (*scdomain.CompanyAdsResponse, error)
}
