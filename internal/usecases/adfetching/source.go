package adfetching

import (
	"fmt"

	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/apify"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/apify/apifyclient"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/scrapecreators"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/scrapecreators/scclient"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
)

// SourceFromConfig escolhe a origem pelo ADS_SOURCE.
func SourceFromConfig(cfg *config.Config) (Source, error) {
	switch cfg.Fetch.Source {
	case config.SourceMeta, "":
		return meta.New(cfg, metaclient.NewClient(cfg)), nil
	case config.SourceScrapeCreators:
		return scrapecreators.New(cfg, scclient.NewClient(cfg)), nil
	case config.SourceApify:
		return apify.New(cfg, apifyclient.NewClient(cfg)), nil
	}

	return nil, domain.NewConfigurationError(fmt.Sprintf(
		"ADS_SOURCE must be one of: %s, %s, %s.",
		config.SourceMeta, config.SourceScrapeCreators, config.SourceApify,
	))
}
