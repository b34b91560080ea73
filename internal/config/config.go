package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DataDir     string // ファイルストアの置き場（./data）
	DatabaseURL string // 指定があればストアをPostgresに切り替える

	PaymentDelayMS int    // 決済シミュレーターの擬似ディレイ（ms）
	Currency       string // 表示通貨（ISO 4217）

	GoEnv string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		DataDir:     getenv("DATA_DIR", "./data"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		PaymentDelayMS: 2000,
		Currency:       getenv("CURRENCY", "USD"),

		GoEnv: getenv("GO_ENV", "dev"),
	}

	if v := os.Getenv("PAYMENT_DELAY_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("PAYMENT_DELAY_MS must be number: %w", err)
		}
		cfg.PaymentDelayMS = ms
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
