package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
)

// DebugToken consulta /debug_token usando o próprio token como credencial.
func (c *MetaClient) DebugToken(ctx context.Context) (*metadomain.DebugTokenData, error) {
	if err := c.requireConfiguration(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("input_token", c.Cfg.Meta.AccessToken)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/debug_token?%s", c.Cfg.Meta.URL, params.Encode())

	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var response metadomain.DebugTokenResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &domain.FetchError{
			Kind:    domain.KindUpstream,
			Message: "Resposta inválida do debug_token",
			Err:     errors.Wrap(err, "erro ao decodificar resposta"),
		}
	}

	return &response.Data, nil
}

// GetAdAccount lê os dados básicos da conta configurada.
func (c *MetaClient) GetAdAccount(ctx context.Context) (*metadomain.AdAccount, error) {
	if err := c.requireConfiguration(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("fields", "id,name,account_status,currency,timezone_name")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	accountID := metadomain.NormalizeAccountID(c.Cfg.Meta.AdAccountID)
	requestURL := fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var account metadomain.AdAccount
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, &domain.FetchError{
			Kind:    domain.KindUpstream,
			Message: "Resposta inválida da conta de anúncios",
			Err:     errors.Wrap(err, "erro ao decodificar resposta"),
		}
	}

	return &account, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}
