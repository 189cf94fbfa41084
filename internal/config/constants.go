// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "vocab_cards"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":3001"
	DefaultLogLevel        = "info"
	DefaultStorageDriver   = "json"
	DefaultWordsFile       = "data/単語例文.json"
	DefaultStatusFile      = "data/status.json"
	DefaultWordsCacheTTL   = 10 * time.Minute
	DefaultClientBaseURL   = "http://localhost:3001/api"
	DefaultNoticeDuration  = time.Second
	DefaultRequestTimeout  = 10 * time.Second
	DefaultClientLogFile   = "logs/study.log"
	DefaultShutdownTimeout = 5 * time.Second
)

// ストレージドライバ
const (
	DriverJSON     = "json"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)
