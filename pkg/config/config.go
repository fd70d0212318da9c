// Package config loads process configuration from the environment,
// optionally seeded from a .env file. Configuration is fixed at startup;
// nothing mutates it afterwards.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/kiransada/duebot/pkg/reminder"
)

// Delivery modes for Telegram updates.
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

// Config is the full process configuration.
type Config struct {
	BotToken     string
	AdminID      int64
	LogChannelID int64

	PaymentLink string
	WAHAURL     string
	WAHAAPIKey  string

	// Mode selects polling or webhook delivery of Telegram updates.
	// WebhookBaseURL is the public base URL the webhook is registered
	// under (webhook mode only).
	Mode           string
	WebhookBaseURL string
	Port           string
	MetricsAddr    string

	Rule      reminder.Rule
	UploadDir string
	HistoryDB string
	LogLevel  string
}

// Load reads configuration from the environment. envFile, when
// non-empty, is loaded first; a missing file is not an error so plain
// env-var deployments keep working.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	} else {
		_ = godotenv.Load()
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return Config{}, fmt.Errorf("BOT_TOKEN not set")
	}

	adminID, err := getEnvInt64("ADMIN_ID", 123456789)
	if err != nil {
		return Config{}, err
	}
	channelID, err := getEnvInt64("LOG_CHANNEL_ID", -1001234567890)
	if err != nil {
		return Config{}, err
	}

	mode := getEnv("BOT_MODE", ModePolling)
	if mode != ModePolling && mode != ModeWebhook {
		return Config{}, fmt.Errorf("invalid BOT_MODE %q (must be %s or %s)", mode, ModePolling, ModeWebhook)
	}

	ruleName := getEnv("ELIGIBILITY_RULE", string(reminder.RuleOverdueGated))
	rule, ok := reminder.ParseRule(ruleName)
	if !ok {
		return Config{}, fmt.Errorf("invalid ELIGIBILITY_RULE %q (must be %s or %s)",
			ruleName, reminder.RuleOverdueGated, reminder.RulePayableOnly)
	}

	return Config{
		BotToken:       token,
		AdminID:        adminID,
		LogChannelID:   channelID,
		PaymentLink:    getEnv("PAYMENT_LINK", "https://payments.example.com"),
		WAHAURL:        getEnv("WAHA_API_URL", "http://localhost:3000/api/sendText"),
		WAHAAPIKey:     os.Getenv("WAHA_API_KEY"),
		Mode:           mode,
		WebhookBaseURL: os.Getenv("WEBHOOK_BASE_URL"),
		Port:           getEnv("PORT", "5000"),
		MetricsAddr:    getEnv("METRICS_ADDR", ":9090"),
		Rule:           rule,
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		HistoryDB:      getEnv("HISTORY_DB", "duebot.db"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
