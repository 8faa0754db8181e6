package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SourceMeta           = "meta"
	SourceScrapeCreators = "scrapecreators"
	SourceApify          = "apify"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Fetch            Fetch            `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Meta             Meta             `mapstructure:",squash"`
	ScrapeCreators   ScrapeCreators   `mapstructure:",squash"`
	Apify            Apify            `mapstructure:",squash"`
	TokenHealthCheck TokenHealthCheck `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Fetch struct {
	Source   string        `mapstructure:"ads_source"`
	MaxAds   int           `mapstructure:"fetch_max_ads"`
	PageSize int           `mapstructure:"fetch_page_size"`
	Timeout  time.Duration `mapstructure:"fetch_timeout"`
	// Nome de página usado quando a biblioteca de anúncios não informa
	LibraryPageName string `mapstructure:"ads_library_page_name"`
}

const DefaultMaxAds = 500

// MaxAdsOrDefault devolve o limite de anúncios por busca; zero ou negativo usa o padrão.
func (f Fetch) MaxAdsOrDefault() int {
	if f.MaxAds > 0 {
		return f.MaxAds
	}
	return DefaultMaxAds
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	AdAccountID string `mapstructure:"meta_ad_account_id"`
	AppID       string `mapstructure:"meta_app_id"`
}

// Configured indica se token e conta de anúncios estão presentes.
func (m Meta) Configured() bool {
	return m.AccessToken != "" && m.AdAccountID != ""
}

type ScrapeCreators struct {
	URL     string `mapstructure:"scraper_creators_url"`
	APIKey  string `mapstructure:"scraper_creators_api_key"`
	PageID  string `mapstructure:"scraper_creators_page_id"`
	Country string `mapstructure:"scraper_creators_country"`
}

type Apify struct {
	URL          string        `mapstructure:"apify_url"`
	APIToken     string        `mapstructure:"apify_api_token"`
	ActorID      string        `mapstructure:"apify_actor_id"`
	PollInterval time.Duration `mapstructure:"apify_poll_interval"`
	MaxItems     int           `mapstructure:"apify_max_items"`
	Query        string        `mapstructure:"apify_query"`
	PageID       string        `mapstructure:"apify_page_id"`
	Country      string        `mapstructure:"apify_country"`
}

type TokenHealthCheck struct {
	CronSchedule string `mapstructure:"token_health_check_cron"`
	Enabled      bool   `mapstructure:"token_health_check_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("ADS_SOURCE", SourceMeta)
	viper.SetDefault("FETCH_MAX_ADS", DefaultMaxAds)
	viper.SetDefault("FETCH_PAGE_SIZE", 100)
	viper.SetDefault("FETCH_TIMEOUT", "30s")
	viper.SetDefault("ADS_LIBRARY_PAGE_NAME", "Cardápio Web")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_monitor?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v21.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_AD_ACCOUNT_ID", "")
	viper.SetDefault("META_APP_ID", "")

	viper.SetDefault("SCRAPER_CREATORS_URL", "https://api.scrapecreators.com")
	viper.SetDefault("SCRAPER_CREATORS_API_KEY", "")
	viper.SetDefault("SCRAPER_CREATORS_PAGE_ID", "")
	viper.SetDefault("SCRAPER_CREATORS_COUNTRY", "BR")

	viper.SetDefault("APIFY_URL", "https://api.apify.com/v2")
	viper.SetDefault("APIFY_API_TOKEN", "")
	viper.SetDefault("APIFY_ACTOR_ID", "")
	viper.SetDefault("APIFY_POLL_INTERVAL", "3s")
	viper.SetDefault("APIFY_MAX_ITEMS", 20)
	viper.SetDefault("APIFY_QUERY", "")
	viper.SetDefault("APIFY_PAGE_ID", "")
	viper.SetDefault("APIFY_COUNTRY", "BR")

	viper.SetDefault("TOKEN_HEALTH_CHECK_CRON", "0 8 * * *") // Todos os dias às 8h
	viper.SetDefault("TOKEN_HEALTH_CHECK_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.normalize()

	return config, nil
}

func (c *Config) normalize() {
	c.Fetch.Source = strings.ToLower(strings.TrimSpace(c.Fetch.Source))
	if c.Fetch.Source == "" {
		c.Fetch.Source = SourceMeta
	}

	c.Meta.BaseURL = strings.TrimRight(c.Meta.BaseURL, "/")
	c.Meta.URL = fmt.Sprintf("%s/%s", c.Meta.BaseURL, c.Meta.Version)

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

// ResolveCredential aplica a precedência explícita: o valor da requisição
// vence o configurado.
func ResolveCredential(override, fallback string) string {
	if value := strings.TrimSpace(override); value != "" {
		return value
	}
	return strings.TrimSpace(fallback)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
