package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Amazon           Amazon           `mapstructure:",squash"`
	Render           Render           `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	AccountDataSync  AccountDataSync  `mapstructure:",squash"`
	DashboardRefresh DashboardRefresh `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`

	// Refresh tokens LWA por conta, carregados dos secrets do Render
	AmazonTokensByAccount map[string]string `mapstructure:"-"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Amazon agrupa as credenciais LWA e os endpoints do SP-API e da Ads API
type Amazon struct {
	LWATokenURL     string `mapstructure:"amazon_lwa_token_url"`
	LWAClientID     string `mapstructure:"amazon_lwa_client_id"`
	LWAClientSecret string `mapstructure:"amazon_lwa_client_secret"`
	SPAPIURL        string `mapstructure:"amazon_spapi_url"`
	AdsAPIURL       string `mapstructure:"amazon_ads_api_url"`
	AdsProfileID    string `mapstructure:"amazon_ads_profile_id"`
	Marketplace     string `mapstructure:"amazon_marketplace_id"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type AccountDataSync struct {
	CronSchedule        string `mapstructure:"account_data_sync_cron"`
	LookbackDays        int    `mapstructure:"account_data_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"account_data_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"account_data_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"account_data_sync_enabled"`
}

type DashboardRefresh struct {
	CronSchedule string `mapstructure:"dashboard_refresh_cron"`
	Enabled      bool   `mapstructure:"dashboard_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/selleranalytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AMAZON_LWA_TOKEN_URL", "https://api.amazon.com/auth/o2/token")
	viper.SetDefault("AMAZON_LWA_CLIENT_ID", "your_client_id")
	viper.SetDefault("AMAZON_LWA_CLIENT_SECRET", "your_client_secret") // ONLY LOCAL
	viper.SetDefault("AMAZON_SPAPI_URL", "https://sellingpartnerapi-na.amazon.com")
	viper.SetDefault("AMAZON_ADS_API_URL", "https://advertising-api.amazon.com")
	viper.SetDefault("AMAZON_ADS_PROFILE_ID", "")
	viper.SetDefault("AMAZON_MARKETPLACE_ID", "ATVPDKIKX0DER") // US

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	// Defaults para sincronização dos payloads das contas
	viper.SetDefault("ACCOUNT_DATA_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("ACCOUNT_DATA_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar dados
	viper.SetDefault("ACCOUNT_DATA_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("ACCOUNT_DATA_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("ACCOUNT_DATA_SYNC_ENABLED", false)

	// Defaults para recomposição dos dashboards
	viper.SetDefault("DASHBOARD_REFRESH_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	// Os refresh tokens LWA de cada conta ficam nos secrets do serviço no
	// Render, com o ID da conta como nome do secret
	config.AmazonTokensByAccount = make(map[string]string)
	if config.Render.ServiceID != "" {
		renderClient := NewRenderClient(config)
		secretsByName, err := renderClient.ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.Error("Erro ao obter secrets do Render:", err)
			return nil, err
		}
		config.AmazonTokensByAccount = secretsByName
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
