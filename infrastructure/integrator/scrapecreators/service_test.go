package scrapecreators

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	scdomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/scrapecreators/domain"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/scrapecreators/scclient/mocks"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/normalizing"
	"go.uber.org/mock/gomock"
)

func TestScrapeCreatorsIntegrator_ProxyCompanyAds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	tests := []struct {
		name         string
		configKey    string
		query        scdomain.LibraryQuery
		setup        func()
		expectedCode string
		expectedHTTP int
	}{
		{
			name:         "Parâmetros ausentes retornam 400",
			configKey:    "env",
			query:        scdomain.LibraryQuery{PageID: "1", Country: "BR"},
			setup:        func() {},
			expectedCode: domain.CodeMissingParameters,
			expectedHTTP: http.StatusBadRequest,
		},
		{
			name:         "Sem chave em lugar nenhum retorna 401",
			query:        scdomain.LibraryQuery{PageID: "1", Country: "BR", ActiveStatus: "all"},
			setup:        func() {},
			expectedCode: domain.CodeMissingAPIKey,
			expectedHTTP: http.StatusUnauthorized,
		},
		{
			name:      "Chave da requisição vence a configurada",
			configKey: "env",
			query:     scdomain.LibraryQuery{PageID: "1", Country: "BR", ActiveStatus: "all", APIKey: "query"},
			setup: func() {
				mockClient.EXPECT().
					GetCompanyAds(gomock.Any(), scdomain.LibraryQuery{PageID: "1", Country: "BR", ActiveStatus: "all", APIKey: "query"}).
					Return(&scdomain.CompanyAdsResponse{Body: []byte(`{}`)}, nil)
			},
		},
		{
			name:      "Sem chave na requisição usa a configurada",
			configKey: "env",
			query:     scdomain.LibraryQuery{PageID: "1", Country: "BR", ActiveStatus: "all"},
			setup: func() {
				mockClient.EXPECT().
					GetCompanyAds(gomock.Any(), scdomain.LibraryQuery{PageID: "1", Country: "BR", ActiveStatus: "all", APIKey: "env"}).
					Return(&scdomain.CompanyAdsResponse{Body: []byte(`{}`)}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			cfg := &config.Config{ScrapeCreators: config.ScrapeCreators{APIKey: tt.configKey}}
			response, err := New(cfg, mockClient).ProxyCompanyAds(context.Background(), tt.query)

			if tt.expectedCode != "" {
				var fetchErr *domain.FetchError
				require.ErrorAs(t, err, &fetchErr)
				assert.Equal(t, tt.expectedCode, fetchErr.WireCode())
				assert.Equal(t, tt.expectedHTTP, fetchErr.HTTPStatus())
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, response)
		})
	}
}

func TestScrapeCreatorsIntegrator_FetchRawAds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	t.Run("Sem configuração não chama a origem", func(t *testing.T) {
		integrator := New(&config.Config{}, mockClient)

		_, err := integrator.FetchRawAds(context.Background(), &domain.AdFilters{})

		assert.Equal(t, domain.KindConfiguration, domain.KindOf(err))
	})

	t.Run("Repassa status e limite", func(t *testing.T) {
		cfg := &config.Config{
			Fetch:          config.Fetch{MaxAds: 500, LibraryPageName: "Cardápio Web"},
			ScrapeCreators: config.ScrapeCreators{APIKey: "k", PageID: "p", Country: "br"},
		}

		mockClient.EXPECT().
			GetAllAds(gomock.Any(), scdomain.LibraryQuery{PageID: "p", Country: "BR", ActiveStatus: "inactive", APIKey: "k"}, 500).
			Return([]normalizing.RawItem{{"ad_archive_id": "1"}}, nil)

		integrator := New(cfg, mockClient)
		items, err := integrator.FetchRawAds(context.Background(), &domain.AdFilters{Status: domain.StatusFilterInactive})

		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "Cardápio Web", integrator.Schema().PageName.Default)
		assert.Equal(t, "scrapecreators", integrator.Name())
	})

	t.Run("Limite zerado usa o padrão", func(t *testing.T) {
		cfg := &config.Config{
			ScrapeCreators: config.ScrapeCreators{APIKey: "k", PageID: "p", Country: "br"},
		}

		mockClient.EXPECT().
			GetAllAds(gomock.Any(), gomock.Any(), config.DefaultMaxAds).
			Return([]normalizing.RawItem{}, nil)

		_, err := New(cfg, mockClient).FetchRawAds(context.Background(), &domain.AdFilters{})

		require.NoError(t, err)
	})
}
