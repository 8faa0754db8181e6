package apifyclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	apifydomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/apify/domain"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StartRun dispara uma execução do actor configurado.
func (c *ApifyClient) StartRun(ctx context.Context, input apifydomain.RunInput) (*apifydomain.Run, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao codificar a entrada do actor")
	}

	endpoint := c.endpoint(fmt.Sprintf("/acts/%s/runs", url.PathEscape(c.config.Apify.ActorID)))

	body, err := c.do(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, err
	}

	return decodeRun(body)
}

func (c *ApifyClient) GetRun(ctx context.Context, runID string) (*apifydomain.Run, error) {
	body, err := c.do(ctx, http.MethodGet, c.endpoint("/actor-runs/"+url.PathEscape(runID)), nil)
	if err != nil {
		return nil, err
	}

	return decodeRun(body)
}

func (c *ApifyClient) GetDatasetItems(ctx context.Context, datasetID string) ([]any, error) {
	body, err := c.do(ctx, http.MethodGet, c.endpoint(fmt.Sprintf("/datasets/%s/items", url.PathEscape(datasetID))), nil)
	if err != nil {
		return nil, err
	}

	var items []any
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, invalidResponse(err)
	}

	return items, nil
}

func (c *ApifyClient) endpoint(resource string) string {
	params := url.Values{}
	params.Set("token", c.config.Apify.APIToken)
	return c.config.Apify.URL + resource + "?" + params.Encode()
}

func (c *ApifyClient) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, domain.NewNetworkError(errors.Wrap(err, "erro ao criar a requisição"))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("apify: erro ao executar a requisição")
		return nil, domain.NewNetworkError(errors.Wrap(err, "erro ao executar a requisição"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewNetworkError(errors.Wrap(err, "erro ao ler a resposta"))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"method":      method,
		}).Error("apify: requisição falhou")
		return nil, domain.ClassifyUpstreamStatus(resp.StatusCode, fmt.Sprintf("Apify API error: %s", http.StatusText(resp.StatusCode)), nil)
	}

	return body, nil
}

func decodeRun(body []byte) (*apifydomain.Run, error) {
	var response apifydomain.RunResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, invalidResponse(err)
	}
	return &response.Data, nil
}

func invalidResponse(err error) *domain.FetchError {
	return &domain.FetchError{
		Kind:    domain.KindUpstream,
		Message: "Resposta inválida da Apify",
		Err:     errors.Wrap(err, "erro ao decodificar a resposta"),
	}
}
