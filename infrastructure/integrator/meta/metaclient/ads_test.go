package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Fetch: config.Fetch{MaxAds: 500, PageSize: 100, Timeout: 5 * time.Second},
		Meta: config.Meta{
			URL:         baseURL + "/v21.0",
			Version:     "v21.0",
			AccessToken: "token-teste",
			AdAccountID: "act_123",
		},
	}
}

func decodedQuery(t *testing.T, rawURL string) url.Values {
	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	return parsed.Query()
}

func TestBuildAdsURL(t *testing.T) {
	client := NewClientWithHTTP(testConfig("https://graph.test"), http.DefaultClient)

	tests := []struct {
		name     string
		filters  *domain.AdFilters
		validate func(t *testing.T, query url.Values, rawURL string)
	}{
		{
			name:    "Janela de datas só dentro de insights",
			filters: &domain.AdFilters{Status: domain.StatusFilterAll, DateFrom: "2024-02-20", DateTo: "2024-02-27"},
			validate: func(t *testing.T, query url.Values, rawURL string) {
				fields := query.Get("fields")
				assert.Contains(t, fields, "insights.time_range({'since':'2024-02-20','until':'2024-02-27'})")
				assert.Equal(t, 1, strings.Count(fields, "time_range"))
				assert.NotContains(t, fields, "date_preset")
				_, hasTopLevel := query["time_range"]
				assert.False(t, hasTopLevel)
				assert.Empty(t, query.Get("filtering"))
			},
		},
		{
			name:    "Sem datas usa os últimos 30 dias",
			filters: &domain.AdFilters{},
			validate: func(t *testing.T, query url.Values, rawURL string) {
				fields := query.Get("fields")
				assert.Contains(t, fields, "insights.date_preset(last_30d)")
				assert.NotContains(t, fields, "time_range")
				_, hasTopLevel := query["time_range"]
				assert.False(t, hasTopLevel)
			},
		},
		{
			name:    "Apenas uma data usa a janela padrão",
			filters: &domain.AdFilters{DateFrom: "2024-02-20"},
			validate: func(t *testing.T, query url.Values, rawURL string) {
				assert.Contains(t, query.Get("fields"), "insights.date_preset(last_30d)")
				assert.NotContains(t, query.Get("fields"), "time_range")
			},
		},
		{
			name:    "Filtro de ativos",
			filters: &domain.AdFilters{Status: domain.StatusFilterActive},
			validate: func(t *testing.T, query url.Values, rawURL string) {
				assert.JSONEq(t, `[{"field":"effective_status","operator":"IN","value":["ACTIVE"]}]`, query.Get("filtering"))
			},
		},
		{
			name:    "Filtro de inativos",
			filters: &domain.AdFilters{Status: domain.StatusFilterInactive},
			validate: func(t *testing.T, query url.Values, rawURL string) {
				assert.JSONEq(t, `[{"field":"effective_status","operator":"IN","value":["PAUSED"]}]`, query.Get("filtering"))
			},
		},
		{
			name:    "Parâmetros fixos da requisição",
			filters: &domain.AdFilters{},
			validate: func(t *testing.T, query url.Values, rawURL string) {
				assert.True(t, strings.HasPrefix(rawURL, "https://graph.test/v21.0/act_123/ads?"))
				assert.Equal(t, "100", query.Get("limit"))
				assert.Equal(t, "token-teste", query.Get("access_token"))
				assert.Contains(t, query.Get("fields"), "creative{")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rawURL, err := client.BuildAdsURL(tt.filters)
			require.NoError(t, err)
			tt.validate(t, decodedQuery(t, rawURL), rawURL)
		})
	}
}

func TestBuildAdsURL_PrefixoDaConta(t *testing.T) {
	cfg := testConfig("https://graph.test")
	cfg.Meta.AdAccountID = "987"

	rawURL, err := NewClientWithHTTP(cfg, http.DefaultClient).BuildAdsURL(&domain.AdFilters{})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rawURL, "https://graph.test/v21.0/act_987/ads?"))
}

// pagedServer responde páginas de pageSize itens com cursor até totalPages.
func pagedServer(t *testing.T, pageSize, totalPages int, calls *int32) *httptest.Server {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := int(atomic.AddInt32(calls, 1)) - 1

		items := make([]string, 0, pageSize)
		for i := 0; i < pageSize; i++ {
			items = append(items, fmt.Sprintf(`{"id":"%d%04d","effective_status":"ACTIVE"}`, page, i))
		}

		next := ""
		if page+1 < totalPages {
			next = fmt.Sprintf(`,"next":"%s/v21.0/act_123/ads?after=c%d"`, server.URL, page+1)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data":[%s],"paging":{"cursors":{"after":"c%d"}%s}}`, strings.Join(items, ","), page, next)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGetAllAds_Paginacao(t *testing.T) {
	tests := []struct {
		name          string
		pageSize      int
		totalPages    int
		expectedAds   int
		expectedCalls int32
	}{
		{name: "Limite de 500 atingido em 5 páginas", pageSize: 100, totalPages: 10, expectedAds: 500, expectedCalls: 5},
		{name: "Poucas páginas terminam pelo cursor", pageSize: 100, totalPages: 2, expectedAds: 200, expectedCalls: 2},
		{name: "Última página não é cortada", pageSize: 300, totalPages: 4, expectedAds: 600, expectedCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			server := pagedServer(t, tt.pageSize, tt.totalPages, &calls)
			client := NewClientWithHTTP(testConfig(server.URL), server.Client())

			items, err := client.GetAllAds(context.Background(), &domain.AdFilters{})

			require.NoError(t, err)
			assert.Len(t, items, tt.expectedAds)
			assert.Equal(t, tt.expectedCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestGetAllAds_ClassificacaoDeErros(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedKind    domain.ErrorKind
		expectedMessage string
	}{
		{name: "401 vira token inválido", status: http.StatusUnauthorized, body: `{"error":{"message":"bad token","code":190}}`, expectedKind: domain.KindInvalidToken, expectedMessage: "Token de acesso inválido ou expirado."},
		{name: "403 vira sem permissão", status: http.StatusForbidden, body: `{}`, expectedKind: domain.KindPermissionDenied, expectedMessage: "Sem permissão para acessar esta conta de anúncios."},
		{name: "429 vira limite de requisições", status: http.StatusTooManyRequests, body: `{}`, expectedKind: domain.KindRateLimit, expectedMessage: "Limite de requisições excedido."},
		{name: "500 vira erro da Meta com mensagem da origem", status: http.StatusInternalServerError, body: `{"error":{"message":"Service temporarily unavailable"}}`, expectedKind: domain.KindUpstream, expectedMessage: "Service temporarily unavailable"},
		{name: "Corpo não JSON usa mensagem padrão", status: http.StatusBadGateway, body: `<html>`, expectedKind: domain.KindUpstream, expectedMessage: "Erro ao buscar dados da Meta API"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			client := NewClientWithHTTP(testConfig(server.URL), server.Client())
			items, err := client.GetAllAds(context.Background(), &domain.AdFilters{})

			require.Error(t, err)
			assert.Nil(t, items)
			assert.Equal(t, tt.expectedKind, domain.KindOf(err))
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "sem retentativas")

			var fetchErr *domain.FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tt.expectedMessage, fetchErr.Message)
			assert.Equal(t, tt.status, fetchErr.Status)
		})
	}
}

func TestGetAllAds_FalhaNaSegundaPaginaDescartaTudo(t *testing.T) {
	var calls int32
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprintf(w, `{"data":[{"id":"1"}],"paging":{"next":"%s/next"}}`, server.URL)
	}))
	defer server.Close()

	items, err := NewClientWithHTTP(testConfig(server.URL), server.Client()).GetAllAds(context.Background(), &domain.AdFilters{})

	assert.Nil(t, items)
	assert.Equal(t, domain.KindRateLimit, domain.KindOf(err))
}

func TestGetAllAds_SemConfiguracao(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.Meta.AccessToken = ""

	_, err := NewClientWithHTTP(cfg, server.Client()).GetAllAds(context.Background(), &domain.AdFilters{})

	assert.Equal(t, domain.KindConfiguration, domain.KindOf(err))
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestGetAllAds_ErroDeRede(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewClientWithHTTP(testConfig(server.URL), &http.Client{Timeout: time.Second}).GetAllAds(context.Background(), &domain.AdFilters{})

	assert.Equal(t, domain.KindNetwork, domain.KindOf(err))
}

func TestGetAllAds_ContextoCancelado(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClientWithHTTP(testConfig(server.URL), server.Client()).GetAllAds(ctx, &domain.AdFilters{})

	assert.Equal(t, domain.KindNetwork, domain.KindOf(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
