package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCredential(t *testing.T) {
	tests := []struct {
		name     string
		override string
		fallback string
		expected string
	}{
		{name: "Valor da requisição vence", override: "query-key", fallback: "env-key", expected: "query-key"},
		{name: "Sem valor na requisição usa o configurado", override: "", fallback: "env-key", expected: "env-key"},
		{name: "Espaços contam como ausente", override: "   ", fallback: "env-key", expected: "env-key"},
		{name: "Nenhum valor", override: "", fallback: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveCredential(tt.override, tt.fallback))
		})
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("META_ACCESS_TOKEN", "token-teste")
	t.Setenv("META_AD_ACCOUNT_ID", "act_123")
	t.Setenv("ADS_SOURCE", " Meta ")

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, SourceMeta, cfg.Fetch.Source)
	assert.Equal(t, 500, cfg.Fetch.MaxAds)
	assert.Equal(t, 100, cfg.Fetch.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "https://graph.facebook.com/v21.0", cfg.Meta.URL)
	assert.Equal(t, 3*time.Second, cfg.Apify.PollInterval)
	assert.True(t, cfg.Meta.Configured())
	assert.False(t, cfg.Database.Enabled)
}

func TestMeta_Configured(t *testing.T) {
	assert.False(t, Meta{AccessToken: "token"}.Configured())
	assert.False(t, Meta{AdAccountID: "act_1"}.Configured())
	assert.True(t, Meta{AccessToken: "token", AdAccountID: "act_1"}.Configured())
}

func TestFetch_MaxAdsOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		maxAds   int
		expected int
	}{
		{name: "Valor configurado", maxAds: 50, expected: 50},
		{name: "Zero usa o padrão", maxAds: 0, expected: DefaultMaxAds},
		{name: "Negativo usa o padrão", maxAds: -1, expected: DefaultMaxAds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fetch{MaxAds: tt.maxAds}.MaxAdsOrDefault())
		})
	}
}
