package adfetching

import (
	"context"
	"time"

	"github.com/vfg2006/ads-monitor-api/infrastructure/repository"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/normalizing"
	"github.com/vfg2006/ads-monitor-api/pkg/log"
)

type Service struct {
	source    Source
	assembler *normalizing.Assembler
	runs      repository.FetchRunRepository
	now       func() time.Time
}

// NewService monta o caso de uso. runs pode ser nil quando o banco está desabilitado.
func NewService(source Source, runs repository.FetchRunRepository, opts ...normalizing.Option) *Service {
	service := &Service{
		source: source,
		runs:   runs,
		now:    time.Now,
	}

	service.assembler = normalizing.NewAssembler(source.Schema(), opts...)

	return service
}

// FetchAds busca os itens brutos, monta os anúncios e aplica status e busca textual.
func (s *Service) FetchAds(ctx context.Context, filters *domain.AdFilters) (*domain.AdsResponse, error) {
	if filters == nil {
		filters = &domain.AdFilters{Status: domain.StatusFilterAll}
	}

	logger := log.ForContext(ctx)
	startedAt := s.now()

	items, err := s.source.FetchRawAds(ctx, filters)
	if err != nil {
		s.recordRun(ctx, filters, startedAt, 0, err)
		return nil, err
	}

	assembled := s.assembler.AssembleAll(ctx, items)

	ads := make([]domain.Ad, 0, len(assembled))
	for _, ad := range assembled {
		if filters.Matches(ad) {
			ads = append(ads, ad)
		}
	}

	logger.WithFields(log.Fields{
		"source":      s.source.Name(),
		"raw_items":   len(items),
		"ads_fetched": len(ads),
	}).Info("adfetching: anúncios normalizados")

	s.recordRun(ctx, filters, startedAt, len(ads), nil)

	return domain.NewAdsResponse(ads), nil
}

// Overview resume os anúncios da busca nos números dos cards do painel.
func (s *Service) Overview(ctx context.Context, filters *domain.AdFilters) (*domain.AdsOverview, error) {
	response, err := s.FetchAds(ctx, filters)
	if err != nil {
		return nil, err
	}

	return domain.SummarizeAds(response.Ads, s.now()), nil
}

func (s *Service) ListRuns(ctx context.Context, limit int) ([]*domain.FetchRun, error) {
	if s.runs == nil {
		return nil, domain.NewConfigurationError("DATABASE_ENABLED must be true to list fetch runs.")
	}

	return s.runs.ListRecent(ctx, limit)
}

// recordRun grava o histórico sem interromper a busca quando o banco falha.
func (s *Service) recordRun(ctx context.Context, filters *domain.AdFilters, startedAt time.Time, adsCount int, fetchErr error) {
	if s.runs == nil {
		return
	}

	run := &domain.FetchRun{
		Source:     s.source.Name(),
		Status:     string(filters.StatusOrAll()),
		DateFrom:   filters.DateFrom,
		DateTo:     filters.DateTo,
		Search:     filters.Search,
		AdsCount:   adsCount,
		DurationMs: s.now().Sub(startedAt).Milliseconds(),
		StartedAt:  startedAt.UTC(),
	}

	if fetchErr != nil {
		run.ErrorKind = string(domain.KindOf(fetchErr))
		if run.ErrorKind == "" {
			run.ErrorKind = "UNKNOWN"
		}
	}

	if err := s.runs.Save(context.WithoutCancel(ctx), run); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"source": run.Source,
			"error":  err.Error(),
		}).Warn("adfetching: falha ao registrar execução")
	}
}
