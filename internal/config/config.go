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
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Sheets        Sheets        `mapstructure:",squash"`
	OpenAI        OpenAI        `mapstructure:",squash"`
	Firecrawl     Firecrawl     `mapstructure:",squash"`
	ScreenshotOne ScreenshotOne `mapstructure:",squash"`
	SheetSync     SheetSync     `mapstructure:",squash"`
	Query         Query         `mapstructure:",squash"`
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

type Sheets struct {
	ExportURL string `mapstructure:"sheets_export_url"`
	Currency  string `mapstructure:"sheets_currency"`
}

type OpenAI struct {
	APIKey       string `mapstructure:"openai_api_key"`
	DefaultModel string `mapstructure:"openai_default_model"`
}

type Firecrawl struct {
	APIKey string `mapstructure:"firecrawl_api_key"`
	URL    string `mapstructure:"firecrawl_url"`
}

type ScreenshotOne struct {
	APIKey string `mapstructure:"screenshotone_api_key"`
	URL    string `mapstructure:"screenshotone_url"`
}

type SheetSync struct {
	CronSchedule      string `mapstructure:"sheet_sync_cron"`
	RequestDelayMs    int    `mapstructure:"sheet_sync_request_delay_ms"`
	MaxConcurrentJobs int    `mapstructure:"sheet_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"sheet_sync_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Query struct {
	PreviewLimit int `mapstructure:"query_preview_limit"`
	InsightLimit int `mapstructure:"query_insight_limit"`
	HistoryLimit int `mapstructure:"insight_history_limit"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/gads")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SHEETS_EXPORT_URL", "")
	viper.SetDefault("SHEETS_CURRENCY", "EUR")

	viper.SetDefault("OPENAI_API_KEY", "") // ONLY LOCAL
	viper.SetDefault("OPENAI_DEFAULT_MODEL", "gpt-4.1-mini")

	viper.SetDefault("FIRECRAWL_API_KEY", "")
	viper.SetDefault("FIRECRAWL_URL", "https://api.firecrawl.dev/v1")

	viper.SetDefault("SCREENSHOTONE_API_KEY", "")
	viper.SetDefault("SCREENSHOTONE_URL", "https://api.screenshotone.com")

	// Defaults para sincronização da planilha
	viper.SetDefault("SHEET_SYNC_CRON", "0 6 * * *")      // Todos os dias às 6h da manhã
	viper.SetDefault("SHEET_SYNC_REQUEST_DELAY_MS", 500)  // 500ms entre requisições de abas
	viper.SetDefault("SHEET_SYNC_MAX_CONCURRENT_JOBS", 1) // 1 job por vez
	viper.SetDefault("SHEET_SYNC_ENABLED", false)         // Habilitar sincronização da planilha

	viper.SetDefault("QUERY_PREVIEW_LIMIT", 5)
	viper.SetDefault("QUERY_INSIGHT_LIMIT", 1000)
	viper.SetDefault("INSIGHT_HISTORY_LIMIT", 10)

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
