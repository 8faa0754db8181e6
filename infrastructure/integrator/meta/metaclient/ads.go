package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/normalizing"
	"github.com/vfg2006/ads-monitor-api/pkg/utils"
)

// BuildAdsURL monta a primeira página de /{ad_account_id}/ads. A janela de datas
// vai somente dentro do campo insights; nunca como time_range de topo.
func (c *MetaClient) BuildAdsURL(filters *domain.AdFilters) (string, error) {
	accountID := metadomain.NormalizeAccountID(c.Cfg.Meta.AdAccountID)
	baseURL := fmt.Sprintf("%s/%s/ads", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("access_token", c.Cfg.Meta.AccessToken)
	params.Add("fields", adsFields(filters))
	params.Add("limit", strconv.Itoa(c.pageSize()))

	if filtering, ok := statusFiltering(filters); ok {
		encoded, err := json.Marshal(filtering)
		if err != nil {
			return "", errors.Wrap(err, "erro ao codificar filtro de status")
		}
		params.Add("filtering", string(encoded))
	}

	return baseURL + "?" + params.Encode(), nil
}

func adsFields(filters *domain.AdFilters) string {
	return fmt.Sprintf("%s,%s,insights.%s%s",
		metadomain.AdBaseFields,
		metadomain.CreativeFields,
		insightsWindow(filters),
		metadomain.InsightMetricFields,
	)
}

func insightsWindow(filters *domain.AdFilters) string {
	if filters.HasDateWindow() {
		return fmt.Sprintf("time_range({'since':'%s','until':'%s'})", filters.DateFrom, filters.DateTo)
	}
	return fmt.Sprintf("date_preset(%s)", metadomain.DefaultDatePreset)
}

func statusFiltering(filters *domain.AdFilters) ([]metadomain.FilterClause, bool) {
	switch filters.StatusOrAll() {
	case domain.StatusFilterActive:
		return metadomain.EffectiveStatusFilter("ACTIVE"), true
	case domain.StatusFilterInactive:
		return metadomain.EffectiveStatusFilter("PAUSED"), true
	}
	return nil, false
}

func (c *MetaClient) pageSize() int {
	if c.Cfg.Fetch.PageSize > 0 {
		return c.Cfg.Fetch.PageSize
	}
	return 100
}

func (c *MetaClient) maxAds() int {
	return c.Cfg.Fetch.MaxAdsOrDefault()
}

func (c *MetaClient) GetAdsPage(ctx context.Context, pageURL string) (*metadomain.AdsPage, error) {
	body, err := c.get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	var page metadomain.AdsPage
	if err := json.Unmarshal(body, &page); err != nil {
		logrus.WithError(err).Error("meta: erro ao decodificar página de anúncios")
		return nil, &domain.FetchError{
			Kind:    domain.KindUpstream,
			Message: "Resposta inválida da Meta API",
			Err:     errors.Wrap(err, "erro ao decodificar JSON"),
		}
	}

	return &page, nil
}

// GetAllAds segue paging.next em sequência até acabar o cursor ou atingir o
// limite configurado. Qualquer falha descarta o que já foi acumulado.
func (c *MetaClient) GetAllAds(ctx context.Context, filters *domain.AdFilters) ([]normalizing.RawItem, error) {
	if err := c.requireConfiguration(); err != nil {
		return nil, err
	}

	firstURL, err := c.BuildAdsURL(filters)
	if err != nil {
		return nil, err
	}

	items, pages, err := utils.CollectPages(ctx, firstURL, c.maxAds(), func(ctx context.Context, pageURL string) ([]any, string, error) {
		page, err := c.GetAdsPage(ctx, pageURL)
		if err != nil {
			return nil, "", err
		}
		return page.Data, page.Paging.Next, nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && domain.KindOf(err) == "" {
			return nil, domain.NewNetworkError(errors.Wrap(ctxErr, "busca cancelada"))
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"pages":       pages,
		"ads_fetched": len(items),
	}).Debug("meta: anúncios buscados")

	return normalizing.ToRawItems(items), nil
}
