package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/adfetching"
)

const checkTimeout = 30 * time.Second

// TokenHealthCheckConfig representa a configuração do agendador de verificação do token
type TokenHealthCheckConfig struct {
	CronSchedule string
	Enabled      bool
}

// TokenHealthCheckService agenda a verificação periódica do token e da conta da Meta
type TokenHealthCheckService struct {
	scheduler *gocron.Scheduler
	config    TokenHealthCheckConfig
	checker   adfetching.HealthChecker

	checkRunning         bool
	checkMutex           sync.Mutex
	lastCheckStartedAt   time.Time
	lastCheckCompletedAt time.Time
	lastResult           *domain.IntegrationHealth
	lastError            string
}

func NewTokenHealthCheckService(checker adfetching.HealthChecker, appConfig *config.Config) *TokenHealthCheckService {
	checkConfig := TokenHealthCheckConfig{
		CronSchedule: appConfig.TokenHealthCheck.CronSchedule,
		Enabled:      appConfig.TokenHealthCheck.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": checkConfig.CronSchedule,
		"enabled":       checkConfig.Enabled,
	}).Info("Configuração da verificação do token carregada")

	return &TokenHealthCheckService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    checkConfig,
		checker:   checker,
	}
}

// Start inicia o agendador; não faz nada quando desabilitado
func (s *TokenHealthCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação periódica do token desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de verificação do token")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCheck()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação do token: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de verificação do token")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *TokenHealthCheckService) runCheck() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação do token já em andamento, ignorando")
		return
	}
	s.checkRunning = true
	s.lastCheckStartedAt = time.Now()
	s.checkMutex.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	health, err := s.checker.CheckHealth(ctx)

	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()
	s.checkRunning = false
	s.lastCheckCompletedAt = time.Now()

	if err != nil {
		s.lastResult = nil
		s.lastError = err.Error()
		logrus.WithFields(logrus.Fields{
			"error_kind": domain.KindOf(err),
			"error":      err.Error(),
		}).Error("Verificação do token falhou")
		return
	}

	s.lastResult = health
	s.lastError = ""

	if health.ExpiresSoon() {
		logrus.WithFields(logrus.Fields{
			"expires_in": health.Token.ExpiresIn,
			"account":    health.Account.ID,
		}).Warn(domain.ExpiryWarningMessage)
		return
	}

	logrus.WithField("expires_in", health.Token.ExpiresIn).Info("Token da Meta válido")
}

// TriggerManualSync dispara a verificação fora do agendamento
func (s *TokenHealthCheckService) TriggerManualSync() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação do token já em andamento, ignorando solicitação manual")
		return
	}
	s.checkMutex.Unlock()

	logrus.Info("Iniciando verificação manual do token")
	go s.runCheck()
}

// GetStatus retorna o status atual do agendador
func (s *TokenHealthCheckService) GetStatus() map[string]any {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	status := map[string]any{
		"enabled":                 s.config.Enabled,
		"cron":                    s.config.CronSchedule,
		"running":                 s.checkRunning,
		"last_check_started_at":   s.lastCheckStartedAt,
		"last_check_completed_at": s.lastCheckCompletedAt,
	}
	if s.lastResult != nil {
		status["expires_in"] = s.lastResult.Token.ExpiresIn
		status["expiration_warning"] = s.lastResult.Token.ExpirationWarning
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}

	return status
}
