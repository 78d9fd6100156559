// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "go_5_care_plan"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort        = ":8080"
	DefaultLogLevel          = "info"
	DefaultLocale            = "ja"
	DefaultSyntheticDays     = 14
	DefaultEnrichConcurrency = 4
	DefaultJWTExpiryHours    = 24
)
