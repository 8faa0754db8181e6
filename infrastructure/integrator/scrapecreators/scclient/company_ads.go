package scclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	scdomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/scrapecreators/domain"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/normalizing"
	"github.com/vfg2006/ads-monitor-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetCompanyAds repassa a consulta e devolve o corpo da origem como veio.
func (c *ScrapeCreatorsClient) GetCompanyAds(ctx context.Context, query scdomain.LibraryQuery) (*scdomain.CompanyAdsResponse, error) {
	body, err := c.get(ctx, query)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, &domain.FetchError{
			Kind:    domain.KindUpstream,
			Code:    domain.CodeLibraryUpstream,
			Message: "Scraper Creators API error: invalid JSON response",
		}
	}

	return &scdomain.CompanyAdsResponse{Body: body}, nil
}

// GetLibraryPage lê uma página da biblioteca quando ela é a fonte de anúncios;
// 401, 403 e 429 seguem a mesma classificação das outras fontes.
func (c *ScrapeCreatorsClient) GetLibraryPage(ctx context.Context, query scdomain.LibraryQuery) (*scdomain.LibraryPage, error) {
	body, err := c.get(ctx, query)
	if err != nil {
		return nil, classifySourceError(err)
	}

	var page scdomain.LibraryPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &domain.FetchError{
			Kind:    domain.KindUpstream,
			Code:    domain.CodeLibraryUpstream,
			Message: "Scraper Creators API error: invalid JSON response",
			Err:     errors.Wrap(err, "erro ao decodificar a resposta"),
		}
	}

	return &page, nil
}

// GetAllAds segue o cursor de results até acabar ou atingir maxItems.
func (c *ScrapeCreatorsClient) GetAllAds(ctx context.Context, query scdomain.LibraryQuery, maxItems int) ([]normalizing.RawItem, error) {
	items, pages, err := utils.CollectPages(ctx, query.Cursor, maxItems, func(ctx context.Context, cursor string) ([]any, string, error) {
		pageQuery := query
		pageQuery.Cursor = cursor

		page, err := c.GetLibraryPage(ctx, pageQuery)
		if err != nil {
			return nil, "", err
		}
		if len(page.Results) == 0 {
			return nil, "", nil
		}
		return page.Results, page.Cursor, nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && domain.KindOf(err) == "" {
			return nil, networkError(ctxErr)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"page_id":     query.PageID,
		"pages":       pages,
		"ads_fetched": len(items),
	}).Debug("scrapecreators: anúncios buscados")

	return normalizing.ToRawItems(items), nil
}

func (c *ScrapeCreatorsClient) get(ctx context.Context, query scdomain.LibraryQuery) ([]byte, error) {
	endpoint, err := url.Parse(c.config.ScrapeCreators.URL)
	if err != nil {
		return nil, domain.NewConfigurationError(fmt.Sprintf("SCRAPER_CREATORS_URL inválida: %v", err))
	}
	endpoint.Path = path.Join(endpoint.Path, scdomain.CompanyAdsPath)

	params := endpoint.Query()
	params.Set("pageId", query.PageID)
	params.Set("country", query.Country)
	params.Set("active_status", query.ActiveStatus)
	if query.Cursor != "" {
		params.Set("cursor", query.Cursor)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, networkError(errors.Wrap(err, "erro ao criar a requisição"))
	}

	req.Header.Set("x-api-key", query.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("scrapecreators: erro ao executar a requisição")
		return nil, networkError(errors.Wrap(err, "erro ao executar a requisição"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(errors.Wrap(err, "erro ao ler a resposta"))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logrus.WithField("status_code", resp.StatusCode).Error("scrapecreators: requisição falhou")
		return nil, &domain.FetchError{
			Kind:    domain.KindUpstream,
			Code:    domain.CodeLibraryUpstream,
			Message: fmt.Sprintf("Scraper Creators API error: %s", http.StatusText(resp.StatusCode)),
			Status:  resp.StatusCode,
		}
	}

	return body, nil
}

func classifySourceError(err error) error {
	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) && fetchErr.Kind == domain.KindUpstream && fetchErr.Status != 0 {
		return domain.ClassifyUpstreamStatus(fetchErr.Status, fetchErr.Message, nil)
	}
	return err
}

func networkError(err error) *domain.FetchError {
	return &domain.FetchError{
		Kind:    domain.KindNetwork,
		Message: "Failed to connect to Scraper Creators API",
		Err:     err,
	}
}
