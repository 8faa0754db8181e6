package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/adfetching/mocks"
	"go.uber.org/mock/gomock"
)

func runCLI(t *testing.T, terminal bool, rt *Runtime, args ...string) (string, error) {
	t.Helper()

	original := stdoutIsTerminal
	stdoutIsTerminal = func() bool { return terminal }
	t.Cleanup(func() { stdoutIsTerminal = original })

	loader := func(ctx context.Context) (*Runtime, error) { return rt, nil }

	out := &bytes.Buffer{}
	root := NewRootCmd(loader)
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func sampleAds() *domain.AdsResponse {
	return domain.NewAdsResponse([]domain.Ad{
		{
			ID:        "123",
			Status:    domain.AdStatusActive,
			Platform:  domain.PlatformFacebook,
			Headline:  "Cardápio digital",
			StartDate: "2024-03-01",
			Tags:      []string{},
			AdMetrics: &domain.AdMetrics{Spend: 10.5, Leads: 2, Currency: "BRL"},
		},
	})
}

func TestAdsList(t *testing.T) {
	tests := []struct {
		name     string
		terminal bool
		args     []string
		validate func(t *testing.T, out string)
	}{
		{
			name:     "Saída redirecionada usa JSON",
			terminal: false,
			args:     []string{"ads", "list", "--status", "active", "--from", "2024-03-01", "--to", "2024-03-31"},
			validate: func(t *testing.T, out string) {
				assert.Contains(t, out, `"total":1`)
				assert.Contains(t, out, `"headline":"Cardápio digital"`)
			},
		},
		{
			name:     "Terminal usa tabela",
			terminal: true,
			args:     []string{"ads", "list", "--status", "active", "--from", "2024-03-01", "--to", "2024-03-31"},
			validate: func(t *testing.T, out string) {
				assert.Contains(t, out, "TÍTULO")
				assert.Contains(t, out, "Cardápio digital")
				assert.Contains(t, out, "10.50 BRL")
			},
		},
		{
			name:     "Terminal com --json força JSON",
			terminal: true,
			args:     []string{"ads", "list", "--status", "active", "--from", "2024-03-01", "--to", "2024-03-31", "--json"},
			validate: func(t *testing.T, out string) {
				assert.Contains(t, out, `"ads":[`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mocks.NewMockAdFetcher(ctrl)
			fetcher.EXPECT().FetchAds(gomock.Any(), &domain.AdFilters{
				Status:   domain.StatusFilterActive,
				DateFrom: "2024-03-01",
				DateTo:   "2024-03-31",
			}).Return(sampleAds(), nil)

			out, err := runCLI(t, tt.terminal, &Runtime{Fetcher: fetcher}, tt.args...)
			require.NoError(t, err)
			tt.validate(t, out)
		})
	}
}

func TestAdsListDataInvalida(t *testing.T) {
	loaded := false
	root := NewRootCmd(func(ctx context.Context) (*Runtime, error) {
		loaded = true
		return &Runtime{}, nil
	})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"ads", "list", "--from", "2024/03/01"})

	err := root.Execute()

	assert.Equal(t, domain.KindInvalidRequest, domain.KindOf(err))
	assert.False(t, loaded)
}

func TestAdsOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockAdFetcher(ctrl)
	fetcher.EXPECT().Overview(gomock.Any(), gomock.Any()).
		Return(&domain.AdsOverview{Total: 4, Active: 1, NewLast7Days: 2, UpdatedRecently: 3, ActiveShare: 25}, nil)

	closed := false
	out, err := runCLI(t, true, &Runtime{Fetcher: fetcher, Close: func() { closed = true }}, "ads", "overview")

	require.NoError(t, err)
	assert.Contains(t, out, "Novos (7 dias)")
	assert.Contains(t, out, "25.00")
	assert.True(t, closed)
}

func TestHealth(t *testing.T) {
	t.Run("Integração saudável em tabela", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := mocks.NewMockHealthChecker(ctrl)
		checker.EXPECT().CheckHealth(gomock.Any()).Return(&domain.IntegrationHealth{
			Status:  "ok",
			Message: domain.HealthyMessage,
			Token:   domain.TokenHealth{Valid: true, ExpiresIn: domain.NeverExpires},
			Account: domain.AccountHealth{ID: "act_1", Status: "ACTIVE"},
		}, nil)

		out, err := runCLI(t, true, &Runtime{HealthChecker: checker}, "health")

		require.NoError(t, err)
		assert.Contains(t, out, domain.NeverExpires)
		assert.Contains(t, out, "act_1")
		assert.NotContains(t, out, "Aviso")
	})

	t.Run("Erro da verificação é devolvido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := mocks.NewMockHealthChecker(ctrl)
		checker.EXPECT().CheckHealth(gomock.Any()).Return(nil, errors.New("token inválido"))

		_, err := runCLI(t, false, &Runtime{HealthChecker: checker}, "health")
		assert.EqualError(t, err, "token inválido")
	})
}
