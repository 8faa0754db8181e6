package metaclient

import (
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// get faz uma única tentativa; não há retentativas em nenhum caso.
func (c *MetaClient) get(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("meta: erro ao criar a requisição")
		return nil, domain.NewNetworkError(errors.Wrap(err, "erro ao criar a requisição"))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("meta: erro ao fazer a requisição")
		return nil, domain.NewNetworkError(errors.Wrap(err, "erro ao fazer a requisição"))
	}
	defer resp.Body.Close()

	return handleResponse(resp)
}

// handleResponse lê o corpo e classifica status não-2xx.
func handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewNetworkError(errors.Wrap(err, "erro ao ler resposta"))
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	var details any = map[string]any{}
	upstreamMessage := ""

	var errorResponse metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResponse); err == nil {
		upstreamMessage = errorResponse.Error.Message
		if errorResponse.IsTokenExpired() {
			logrus.WithField("error_code", errorResponse.Error.Code).Warn("meta: token expirado ou revogado")
		}
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil && decoded != nil {
		details = decoded
	}

	logrus.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"message":     upstreamMessage,
	}).Error("meta: erro retornado pela API")

	return nil, domain.ClassifyUpstreamStatus(resp.StatusCode, upstreamMessage, details)
}
