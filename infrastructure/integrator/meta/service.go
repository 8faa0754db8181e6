package meta

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/normalizing"
	"github.com/vfg2006/ads-monitor-api/pkg/utils"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
	now    func() time.Time
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

func (s *MetaIntegrator) Name() string {
	return config.SourceMeta
}

func (s *MetaIntegrator) Schema() normalizing.Schema {
	return normalizing.MetaSchema
}

func (s *MetaIntegrator) FetchRawAds(ctx context.Context, filters *domain.AdFilters) ([]normalizing.RawItem, error) {
	items, err := s.Client.GetAllAds(ctx, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"status_filter": filters.StatusOrAll(),
			"date_from":     filters.DateFrom,
			"date_to":       filters.DateTo,
			"error":         err.Error(),
		}).Error("meta: falha ao buscar anúncios")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"status_filter": filters.StatusOrAll(),
		"ads_fetched":   len(items),
	}).Debug("meta: anúncios recebidos")

	return items, nil
}

// CheckHealth valida o token e o acesso à conta de anúncios.
func (s *MetaIntegrator) CheckHealth(ctx context.Context) (*domain.IntegrationHealth, error) {
	if !s.cfg.Meta.Configured() {
		return nil, &domain.FetchError{
			Kind:    domain.KindConfiguration,
			Message: "META_ACCESS_TOKEN and META_AD_ACCOUNT_ID must be configured",
			Details: map[string]bool{
				"accessToken": s.cfg.Meta.AccessToken != "",
				"adAccountId": s.cfg.Meta.AdAccountID != "",
				"appId":       s.cfg.Meta.AppID != "",
			},
		}
	}

	tokenInfo, err := s.Client.DebugToken(ctx)
	if err != nil {
		if domain.KindOf(err) == domain.KindNetwork {
			return nil, err
		}
		return nil, &domain.FetchError{
			Kind:    domain.KindInvalidToken,
			Message: "Token inválido ou expirado",
			Details: map[string]any{"valid": false},
			Err:     err,
		}
	}

	if !tokenInfo.IsValid {
		return nil, &domain.FetchError{
			Kind:    domain.KindInvalidToken,
			Message: "Token inválido ou expirado",
			Details: map[string]any{"valid": false, "error": tokenInfo.Error},
		}
	}

	account, err := s.Client.GetAdAccount(ctx)
	if err != nil {
		if domain.KindOf(err) == domain.KindNetwork {
			return nil, err
		}
		return nil, &domain.FetchError{
			Kind:    domain.KindPermissionDenied,
			Code:    domain.CodeAccountUnavailable,
			Status:  http.StatusForbidden,
			Message: "Sem acesso à conta de anúncios",
			Details: map[string]any{
				"token":   map[string]any{"valid": true, "type": tokenInfo.Type, "scopes": tokenInfo.Scopes},
				"account": map[string]any{"accessible": false},
			},
			Err: err,
		}
	}

	now := s.now()
	token := domain.TokenHealth{
		Valid:     true,
		Type:      tokenInfo.Type,
		ExpiresIn: domain.NeverExpires,
		Scopes:    tokenInfo.Scopes,
		AppID:     tokenInfo.AppID,
	}

	if tokenInfo.ExpiresAt > 0 {
		expiresAt := time.Unix(tokenInfo.ExpiresAt, 0)
		days := utils.DaysUntil(expiresAt, now)
		token.DaysUntilExpiry = &days
		token.ExpiresIn = formatDays(days)

		logrus.WithField("expires_at", expiresAt.Format(time.RFC3339)).
			Debugf("meta: token expira em %s", metaclient.FormatDuration(int64(expiresAt.Sub(now).Seconds())))

		if days < domain.TokenExpiryWarningDays {
			warning := domain.ExpiryWarningMessage
			token.ExpirationWarning = &warning
		}
	}

	return &domain.IntegrationHealth{
		Status:  "ok",
		Message: domain.HealthyMessage,
		Token:   token,
		Account: domain.AccountHealth{
			ID:       account.ID,
			Name:     account.Name,
			Status:   account.StatusLabel(),
			Currency: account.Currency,
			Timezone: account.TimezoneName,
		},
		Timestamp: now.UTC().Format(time.RFC3339),
	}, nil
}

func formatDays(days int) string {
	return fmt.Sprintf("%d dias", days)
}
