// Package handler é a entrada para plataformas de funções: cada invocação
// reaproveita o mesmo router montado na primeira chamada.
package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-monitor-api/internal/api"
	"github.com/vfg2006/ads-monitor-api/internal/bootstrap"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ads-monitor-api/pkg/log"
)

var (
	once     sync.Once
	router   http.Handler
	buildErr error

	build = func() (http.Handler, error) {
		cfg, err := config.NewConfig()
		if err != nil {
			return nil, err
		}
		log.SetupLogger(cfg.App.LogLevel)

		app, err := bootstrap.New(context.Background(), cfg)
		if err != nil {
			return nil, err
		}

		return api.NewHandler(app.Services()), nil
	}
)

func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		router, buildErr = build()
		if buildErr != nil {
			logrus.WithError(buildErr).Error("Erro ao inicializar o handler")
		}
	})

	if buildErr != nil {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		apiErrors.WriteFetchError(w, buildErr)
		return
	}

	router.ServeHTTP(w, r)
}
