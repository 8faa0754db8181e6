package scclient

import (
	"context"
	"net/http"

	scdomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/scrapecreators/domain"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/normalizing"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

type Client interface {
	GetCompanyAds(ctx context.Context, query scdomain.LibraryQuery) (*scdomain.CompanyAdsResponse, error)
	GetLibraryPage(ctx context.Context, query scdomain.LibraryQuery) (*scdomain.LibraryPage, error)
	GetAllAds(ctx context.Context, query scdomain.LibraryQuery, maxItems int) ([]normalizing.RawItem, error)
}

type ScrapeCreatorsClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Fetch.Timeout})
}

func NewClientWithHTTP(cfg *config.Config, httpClient *http.Client) *ScrapeCreatorsClient {
	return &ScrapeCreatorsClient{
		httpClient: httpClient,
		config:     cfg,
	}
}
