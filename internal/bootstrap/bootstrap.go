// Package bootstrap monta as dependências compartilhadas pelo servidor, pela CLI
// e pelo handler serverless.
package bootstrap

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/scrapecreators"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/scrapecreators/scclient"
	"github.com/vfg2006/ads-monitor-api/infrastructure/repository"
	"github.com/vfg2006/ads-monitor-api/internal/api"
	"github.com/vfg2006/ads-monitor-api/internal/api/handler"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/scheduler"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/adfetching"
)

type Application struct {
	Config           *config.Config
	Fetcher          adfetching.AdFetcher
	HealthChecker    adfetching.HealthChecker
	LibraryProxy     adfetching.LibraryProxy
	TokenHealthCheck *scheduler.TokenHealthCheckService

	db *postgres.Connection
}

// New conecta ao banco apenas quando DATABASE_ENABLED é verdadeiro.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	app := &Application{Config: cfg}

	var runs repository.FetchRunRepository
	if cfg.Database.Enabled {
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, errors.Wrap(err, "bootstrap: histórico de buscas indisponível")
		}
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

		app.db = conn
		runs = repository.NewFetchRunRepository(conn)
	}

	source, err := adfetching.SourceFromConfig(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	metaIntegrator := meta.New(cfg, metaclient.NewClient(cfg))

	app.Fetcher = adfetching.NewService(source, runs)
	app.HealthChecker = metaIntegrator
	app.LibraryProxy = scrapecreators.New(cfg, scclient.NewClient(cfg))
	app.TokenHealthCheck = scheduler.NewTokenHealthCheckService(metaIntegrator, cfg)

	logrus.WithField("source", source.Name()).Info("Origem de anúncios configurada")

	return app, nil
}

// Services expõe as dependências no formato esperado pelas rotas
func (a *Application) Services() api.Services {
	return api.Services{
		Fetcher:       a.Fetcher,
		HealthChecker: a.HealthChecker,
		LibraryProxy:  a.LibraryProxy,
		CronJobs: handler.CronJobServices{
			TokenHealthCheck: a.TokenHealthCheck,
		},
	}
}

func (a *Application) Close() {
	if a.db == nil {
		return
	}

	if err := a.db.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com o banco")
	}
	a.db = nil
}
