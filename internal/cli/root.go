// Package cli implementa os comandos de operador sobre o mesmo núcleo do servidor.
package cli

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-monitor-api/internal/bootstrap"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/adfetching"
	"github.com/vfg2006/ads-monitor-api/pkg/log"
)

// Runtime são as dependências usadas pelos comandos
type Runtime struct {
	Fetcher       adfetching.AdFetcher
	HealthChecker adfetching.HealthChecker
	Close         func()
}

// Loader monta o Runtime sob demanda, depois do parse das flags
type Loader func(ctx context.Context) (*Runtime, error)

var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// DefaultLoader lê a configuração do ambiente e monta a aplicação completa
func DefaultLoader(ctx context.Context) (*Runtime, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	log.SetupLogger(cfg.App.LogLevel)

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Runtime{
		Fetcher:       app.Fetcher,
		HealthChecker: app.HealthChecker,
		Close:         app.Close,
	}, nil
}

type options struct {
	json   bool
	pretty bool
}

func NewRootCmd(load Loader) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "ads-monitor",
		Short: "Consulta os anúncios monitorados e a saúde da integração",
		Long: `ads-monitor consulta a mesma origem de anúncios usada pela API.

Sai em JSON quando a saída não é um terminal e em tabela quando é.

Exemplos:
  ads-monitor ads list --status active --from 2024-01-01 --to 2024-01-31
  ads-monitor ads overview
  ads-monitor health`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Força saída em JSON")
	root.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "JSON indentado (implica --json)")

	root.AddCommand(newAdsCmd(load, opts), newHealthCmd(load, opts))

	return root
}

func (o *options) isJSON() bool {
	return o.json || o.pretty || !stdoutIsTerminal()
}

func withRuntime(cmd *cobra.Command, load Loader, run func(rt *Runtime) error) error {
	rt, err := load(cmd.Context())
	if err != nil {
		return err
	}
	if rt.Close != nil {
		defer rt.Close()
	}

	return run(rt)
}
