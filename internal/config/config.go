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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	MainDatabase   Database       `mapstructure:",squash"`
	GrowthDatabase GrowthDatabase `mapstructure:",squash"`
	Anthropic      Anthropic      `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Chat           Chat           `mapstructure:",squash"`
	SessionSweep   SessionSweep   `mapstructure:",squash"`
	CORS           CORS           `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Database aponta para o projeto principal (ads e competitors)
type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// GrowthDatabase aponta para o projeto de métricas de marketing
type GrowthDatabase struct {
	DSN      string `mapstructure:"-"`
	Password string `mapstructure:"growth_database_password"`
	URL      string `mapstructure:"growth_database_url"`
	User     string `mapstructure:"growth_database_user"`
}

type Anthropic struct {
	APIKey    string `mapstructure:"anthropic_api_key"`
	Model     string `mapstructure:"anthropic_model"`
	MaxTokens int    `mapstructure:"anthropic_max_tokens"`
}

type Auth struct {
	Secret             string `mapstructure:"auth_secret"`
	AllowedEmailDomain string `mapstructure:"auth_allowed_email_domain"`
}

type Chat struct {
	SessionTTLMinutes  int `mapstructure:"chat_session_ttl_minutes"`
	MaxHistoryMessages int `mapstructure:"chat_max_history_messages"`
	ContextMessages    int `mapstructure:"chat_context_messages"`
	StreamDelayMillis  int `mapstructure:"chat_stream_delay_millis"`
}

type SessionSweep struct {
	CronSchedule string `mapstructure:"session_sweep_cron"`
	Enabled      bool   `mapstructure:"session_sweep_enabled"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ad_intelligence")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GROWTH_DATABASE_URL", "localhost:5432/growth")
	viper.SetDefault("GROWTH_DATABASE_USER", "postgres")
	viper.SetDefault("GROWTH_DATABASE_PASSWORD", "root")

	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-3-5-haiku-latest")
	viper.SetDefault("ANTHROPIC_MAX_TOKENS", 1024)

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_ALLOWED_EMAIL_DOMAIN", "@cloudwalk.io")

	viper.SetDefault("CHAT_SESSION_TTL_MINUTES", 60)   // Sessões expiram após 1h sem uso
	viper.SetDefault("CHAT_MAX_HISTORY_MESSAGES", 50)  // Limite do histórico por sessão
	viper.SetDefault("CHAT_CONTEXT_MESSAGES", 20)      // Mensagens enviadas ao modelo
	viper.SetDefault("CHAT_STREAM_DELAY_MILLIS", 30)   // Ritmo dos chunks no streaming
	viper.SetDefault("SESSION_SWEEP_CRON", "*/15 * * * *")
	viper.SetDefault("SESSION_SWEEP_ENABLED", true)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.MainDatabase.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.MainDatabase.Driver,
		config.MainDatabase.User,
		config.MainDatabase.Password,
		config.MainDatabase.URL,
	)

	config.GrowthDatabase.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.MainDatabase.Driver,
		config.GrowthDatabase.User,
		config.GrowthDatabase.Password,
		config.GrowthDatabase.URL,
	)

	return config, nil
}

// HasAnthropicCredentials indica se o assistente de chat está habilitado
func (c *Config) HasAnthropicCredentials() bool {
	return c.Anthropic.APIKey != ""
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
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
