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
	Shopify          Shopify          `mapstructure:",squash"`
	Sheets           Sheets           `mapstructure:",squash"`
	Report           Report           `mapstructure:",squash"`
	WeeklyReportSync WeeklyReportSync `mapstructure:",squash"`
	RunHistory       RunHistory       `mapstructure:",squash"`
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

type Shopify struct {
	ShopName           string `mapstructure:"shop_name"`
	APIKey             string `mapstructure:"shopify_api_key"`
	Password           string `mapstructure:"shopify_password"`
	Version            string `mapstructure:"shopify_api_version"`
	BaseURL            string `mapstructure:"-"`
	InsecureSkipVerify bool   `mapstructure:"shopify_insecure_skip_verify"`
	PageSize           int    `mapstructure:"shopify_page_size"`
	PageDelayMillis    int    `mapstructure:"shopify_page_delay_millis"`
	MaxServerRetries   int    `mapstructure:"shopify_max_server_retries"`
}

type Sheets struct {
	CredentialsJSON string `mapstructure:"sheets_credentials_json"`
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	SpreadsheetName string `mapstructure:"spreadsheet_name"`
	ShareWithEmail  string `mapstructure:"sheets_share_with_email"`
	ChunkSize       int    `mapstructure:"sheets_chunk_size"`
	ChunkDelayMs    int    `mapstructure:"sheets_chunk_delay_millis"`
}

type Report struct {
	Timezone           string `mapstructure:"report_timezone"`
	EpochYear          int    `mapstructure:"historical_epoch_year"`
	CatchupCutoverDate string `mapstructure:"catchup_cutover_date"`
	OutputDir          string `mapstructure:"report_output_dir"`
	StateFile          string `mapstructure:"spreadsheet_state_file"`
	PeriodPauseEvery   int    `mapstructure:"report_period_pause_every"`
	PeriodPauseSeconds int    `mapstructure:"report_period_pause_seconds"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type WeeklyReportSync struct {
	CronSchedule string `mapstructure:"weekly_report_sync_cron"`
	Enabled      bool   `mapstructure:"weekly_report_sync_enabled"`
}

type RunHistory struct {
	Enabled bool `mapstructure:"run_history_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/reports")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SHOP_NAME", "your-store.myshopify.com")
	viper.SetDefault("SHOPIFY_API_KEY", "your_api_key")
	viper.SetDefault("SHOPIFY_PASSWORD", "your_api_password")
	viper.SetDefault("SHOPIFY_API_VERSION", "2025-04")
	viper.SetDefault("SHOPIFY_INSECURE_SKIP_VERIFY", false)
	viper.SetDefault("SHOPIFY_PAGE_SIZE", 250)         // Máximo permitido pela API da Shopify
	viper.SetDefault("SHOPIFY_PAGE_DELAY_MILLIS", 500) // Pausa entre páginas para respeitar o rate limit
	viper.SetDefault("SHOPIFY_MAX_SERVER_RETRIES", 3)  // Tentativas para erros 5xx

	viper.SetDefault("SHEETS_CREDENTIALS_JSON", "service-account.json")
	viper.SetDefault("SPREADSHEET_ID", "")
	viper.SetDefault("SPREADSHEET_NAME", "Shopify Weekly Reports")
	viper.SetDefault("SHEETS_SHARE_WITH_EMAIL", "")
	viper.SetDefault("SHEETS_CHUNK_SIZE", 100) // Linhas por chamada de escrita
	viper.SetDefault("SHEETS_CHUNK_DELAY_MILLIS", 1000)

	viper.SetDefault("REPORT_TIMEZONE", "America/Denver")
	viper.SetDefault("HISTORICAL_EPOCH_YEAR", 2024)
	viper.SetDefault("CATCHUP_CUTOVER_DATE", "2025-06-01")
	viper.SetDefault("REPORT_OUTPUT_DIR", "reports")
	viper.SetDefault("SPREADSHEET_STATE_FILE", "spreadsheet_config.txt")
	viper.SetDefault("REPORT_PERIOD_PAUSE_EVERY", 5)
	viper.SetDefault("REPORT_PERIOD_PAUSE_SECONDS", 3)

	// Defaults para a sincronização semanal agendada
	viper.SetDefault("WEEKLY_REPORT_SYNC_CRON", "0 6 * * 1") // Toda segunda-feira às 6h da manhã
	viper.SetDefault("WEEKLY_REPORT_SYNC_ENABLED", false)

	viper.SetDefault("RUN_HISTORY_ENABLED", false)

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

	config.Shopify.BaseURL = fmt.Sprintf(
		"https://%s/admin/api/%s",
		config.Shopify.ShopName,
		config.Shopify.Version,
	)

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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
