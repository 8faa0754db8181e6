package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-monitor-api/internal/api"
	"github.com/vfg2006/ads-monitor-api/internal/bootstrap"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.SetupLogger(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a aplicação")
	}
	defer app.Close()

	if err := app.TokenHealthCheck.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação do token")
	}

	server, err := api.New(cfg, app.Services())
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource faz o .env ao lado do binário ser encontrado em `go run`
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}
