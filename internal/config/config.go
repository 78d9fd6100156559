// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

// CapabilityEndpoint は外部能力1つ分の接続設定です
type CapabilityEndpoint struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App struct {
		DefaultLocale string `mapstructure:"default_locale"`
		// 実データが無い場合に生成するサンプルフィードバックの日数
		SyntheticDays int `mapstructure:"synthetic_days"`
		// 課題ごとの動画提案リクエストの同時実行数
		EnrichConcurrency int `mapstructure:"enrich_concurrency"`
	} `mapstructure:"app"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT struct {
		SecretKey   string `mapstructure:"secret_key"`
		ExpiryHours int    `mapstructure:"expiry_hours"`
	} `mapstructure:"jwt"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	// 外部能力 (文字起こし・要約・動画提案・チャット) のエンドポイント
	Capabilities struct {
		Transcribe CapabilityEndpoint `mapstructure:"transcribe"`
		Summarize  CapabilityEndpoint `mapstructure:"summarize"`
		Suggest    CapabilityEndpoint `mapstructure:"suggest"`
		Chat       CapabilityEndpoint `mapstructure:"chat"`
	} `mapstructure:"capabilities"`
	Media struct {
		Bucket        string `mapstructure:"bucket"`
		Region        string `mapstructure:"region"`
		Endpoint      string `mapstructure:"endpoint"` // MinIO等を使う場合のみ設定
		PublicBaseURL string `mapstructure:"public_base_url"`
	} `mapstructure:"media"`
	Mailer struct {
		Type string `mapstructure:"type"` // "ses" / "log"
	} `mapstructure:"mailer"`
	SES SESConfig `mapstructure:"ses"`
}

// SESConfig は AWS SES の接続設定です
type SESConfig struct {
	Region          string `mapstructure:"region"`
	From            string `mapstructure:"from"`
	AuthType        string `mapstructure:"auth_type"` // "iam_role" / "static_credentials"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書き (例: APP_AUTH_ENABLED, APP_JWT_SECRET_KEY)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("database.url", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.App.DefaultLocale == "" {
		Cfg.App.DefaultLocale = DefaultLocale
	}
	if Cfg.App.SyntheticDays <= 0 {
		log.Println("Synthetic days not set or invalid, using default '14'")
		Cfg.App.SyntheticDays = DefaultSyntheticDays
	}
	if Cfg.App.EnrichConcurrency <= 0 {
		Cfg.App.EnrichConcurrency = DefaultEnrichConcurrency
	}
	if Cfg.JWT.ExpiryHours <= 0 {
		Cfg.JWT.ExpiryHours = DefaultJWTExpiryHours
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	// Auth.Enabled のデフォルト値 (未設定なら有効)
	if !viper.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		Cfg.Auth.Enabled = true
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Synthetic Days: %d", Cfg.App.SyntheticDays)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}
