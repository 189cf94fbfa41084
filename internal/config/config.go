// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port" validate:"required"`
}

type StorageConfig struct {
	Driver      string        `mapstructure:"driver" validate:"required,oneof=json sqlite postgres"`
	WordsFile   string        `mapstructure:"words_file" validate:"required"`
	StatusFile  string        `mapstructure:"status_file" validate:"required_if=Driver json"`
	DatabaseURL string        `mapstructure:"database_url" validate:"required_unless=Driver json"`
	WatchWords  bool          `mapstructure:"watch_words"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl" validate:"gte=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn warning error"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age" validate:"gte=0"`
}

// ClientConfig は study (ターミナルUI) 側の設定
type ClientConfig struct {
	BaseURL             string        `mapstructure:"base_url" validate:"required,url"`
	SearchCaseSensitive bool          `mapstructure:"search_case_sensitive"`
	RollbackOnFailure   bool          `mapstructure:"rollback_on_failure"`
	SortType            string        `mapstructure:"sort_type" validate:"oneof=document json status random"`
	NoticeDuration      time.Duration `mapstructure:"notice_duration" validate:"gt=0"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	LogFile             string        `mapstructure:"log_file"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Client  ClientConfig  `mapstructure:"client"`
}

var Cfg Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("storage.driver", DefaultStorageDriver)
	v.SetDefault("storage.words_file", DefaultWordsFile)
	v.SetDefault("storage.status_file", DefaultStatusFile)
	v.SetDefault("storage.database_url", "")
	v.SetDefault("storage.watch_words", true)
	v.SetDefault("storage.cache_ttl", DefaultWordsCacheTTL)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "X-Request-ID"})
	v.SetDefault("cors.exposed_headers", []string{})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("client.base_url", DefaultClientBaseURL)
	v.SetDefault("client.search_case_sensitive", false)
	v.SetDefault("client.rollback_on_failure", false)
	v.SetDefault("client.sort_type", "document")
	v.SetDefault("client.notice_duration", DefaultNoticeDuration)
	v.SetDefault("client.request_timeout", DefaultRequestTimeout)
	v.SetDefault("client.log_file", DefaultClientLogFile)
}

// Load は設定を読み込み、検証済みの Config を返します。
// path にはディレクトリ (config.yaml を探す) か設定ファイルそのものを指定できます。
func Load(path string) (*Config, error) {
	// .env があれば先に環境変数へ反映 (無ければ何もしない)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: failed to load .env: %s", err)
	}

	v := viper.New()
	setDefaults(v)

	if ext := filepath.Ext(path); ext == ".yaml" || ext == ".yml" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if path != "" {
			v.AddConfigPath(path)
		}
		v.AddConfigPath(".")
	}

	// APP_SERVER_PORT のように APP_ 接頭辞 + ドット区切りをアンダースコアにした名前で上書きできる
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			return nil, fmt.Errorf("config.Load: read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: unmarshal: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig は Load の結果をパッケージ変数 Cfg に格納します
func LoadConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		log.Printf("Error loading config: %s\n", err)
		return err
	}
	Cfg = *cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Storage Driver: %s", Cfg.Storage.Driver)
	return nil
}

// IsDev は APP_ENV=dev のときに true を返します
func IsDev() bool {
	return strings.ToLower(os.Getenv("APP_ENV")) == "dev"
}
