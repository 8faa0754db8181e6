package apifyclient

import (
	"context"
	"net/http"

	apifydomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/apify/domain"
	"github.com/vfg2006/ads-monitor-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

type Client interface {
	StartRun(ctx context.Context, input apifydomain.RunInput) (*apifydomain.Run, error)
	GetRun(ctx context.Context, runID string) (*apifydomain.Run, error)
	GetDatasetItems(ctx context.Context, datasetID string) ([]any, error)
}

type ApifyClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Fetch.Timeout})
}

func NewClientWithHTTP(cfg *config.Config, httpClient *http.Client) *ApifyClient {
	return &ApifyClient{
		httpClient: httpClient,
		config:     cfg,
	}
}
