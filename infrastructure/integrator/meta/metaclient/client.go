package metaclient

import (
	"context"
	"net/http"

	metadomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/normalizing"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

type Client interface {
	BuildAdsURL(filters *domain.AdFilters) (string, error)
	GetAdsPage(ctx context.Context, pageURL string) (*metadomain.AdsPage, error)
	GetAllAds(ctx context.Context, filters *domain.AdFilters) ([]normalizing.RawItem, error)
	DebugToken(ctx context.Context) (*metadomain.DebugTokenData, error)
	GetAdAccount(ctx context.Context) (*metadomain.AdAccount, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Fetch.Timeout})
}

func NewClientWithHTTP(cfg *config.Config, httpClient *http.Client) *MetaClient {
	return &MetaClient{
		Cfg:        cfg,
		httpClient: httpClient,
	}
}

func (c *MetaClient) requireConfiguration() error {
	if !c.Cfg.Meta.Configured() {
		return domain.NewConfigurationError("META_ACCESS_TOKEN and META_AD_ACCOUNT_ID must be configured.")
	}
	return nil
}
