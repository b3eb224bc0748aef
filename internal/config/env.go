package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	OutboxDir     string
	ReadStateFile string
	PollInterval  time.Duration

	PaymentBaseURL   string
	PaymentSecretKey string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	poll := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("POLL_INTERVAL_SECONDS")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			poll = time.Duration(n) * time.Second
		}
	}

	return Env{
		AppAddr: appAddr,
		GinMode: ginMode,

		DBUser: envOr("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: envOr("DB_HOST", "127.0.0.1:3306"),
		DBName: envOr("DB_NAME", "luxsuv_admin"),

		JWTSecret: envOr("JWT_SECRET", "super-secret-key-change-me"),

		OutboxDir:     envOr("OUTBOX_DIR", "./outbox"),
		ReadStateFile: envOr("READ_STATE_FILE", "./data/read_notifications.json"),
		PollInterval:  poll,

		PaymentBaseURL:   envOr("PAYMENT_BASE_URL", "https://api.payments.local"),
		PaymentSecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
