package apify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/apify/apifyclient"
	apifydomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/apify/domain"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/normalizing"
)

const defaultPollInterval = 3 * time.Second

type ApifyIntegrator struct {
	cfg    *config.Config
	Client apifyclient.Client
}

func New(cfg *config.Config, client apifyclient.Client) *ApifyIntegrator {
	return &ApifyIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ApifyIntegrator) Name() string {
	return config.SourceApify
}

func (s *ApifyIntegrator) Schema() normalizing.Schema {
	return normalizing.ApifySchema.WithPageName(s.cfg.Fetch.LibraryPageName)
}

// FetchRawAds executa o actor, espera o término e lê os itens do dataset.
func (s *ApifyIntegrator) FetchRawAds(ctx context.Context, filters *domain.AdFilters) ([]normalizing.RawItem, error) {
	if s.cfg.Apify.APIToken == "" || s.cfg.Apify.ActorID == "" {
		return nil, domain.NewConfigurationError("APIFY_API_TOKEN and APIFY_ACTOR_ID must be configured.")
	}

	input := apifydomain.NewRunInput(
		s.cfg.Apify.PageID,
		strings.ToUpper(s.cfg.Apify.Country),
		s.cfg.Apify.Query,
		string(filters.StatusOrAll()),
		s.cfg.Apify.MaxItems,
	)

	run, err := s.Client.StartRun(ctx, input)
	if err != nil {
		return nil, err
	}

	logrus.WithField("run_id", run.ID).Debug("apify: execução iniciada")

	run, err = s.waitForRun(ctx, run)
	if err != nil {
		return nil, err
	}

	items, err := s.Client.GetDatasetItems(ctx, run.DefaultDatasetID)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":      run.ID,
		"ads_fetched": len(items),
	}).Debug("apify: itens do dataset lidos")

	return normalizing.ToRawItems(items), nil
}

func (s *ApifyIntegrator) waitForRun(ctx context.Context, run *apifydomain.Run) (*apifydomain.Run, error) {
	interval := s.cfg.Apify.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for run.Status.Pending() {
		select {
		case <-ctx.Done():
			return nil, domain.NewNetworkError(ctx.Err())
		case <-ticker.C:
		}

		current, err := s.Client.GetRun(ctx, run.ID)
		if err != nil {
			return nil, err
		}
		run = current
	}

	if run.Status.Failed() {
		logrus.WithFields(logrus.Fields{
			"run_id": run.ID,
			"status": run.Status,
		}).Error("apify: execução terminou sem sucesso")
		return nil, &domain.FetchError{
			Kind:    domain.KindUpstream,
			Message: fmt.Sprintf("Apify run failed with status: %s", run.Status),
			Details: map[string]string{"runId": run.ID, "status": string(run.Status)},
		}
	}

	return run, nil
}
