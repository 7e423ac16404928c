package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	MongoURI string
	MongoDB  string

	JWTSecret      string
	SessionTTLDays int // signing validity of the session JWT
	CookieTTLDays  int // cookie max-age, configured separately from the JWT validity

	BcryptCost int

	ClientURL string // base URL embedded in reset-password links

	RedisAddr       string
	RateLimitPerMin int

	RabbitURL string
	Exchange  string

	// notifier only
	Queue       string
	BindKey     string
	Concurrency int

	PostmarkServerToken  string
	PostmarkAccountToken string
	SenderEmail          string
	SenderName           string

	Prod bool
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:           getenv("APP_PORT", "8080"),
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB", "jobnest"),
		JWTSecret:      getenv("JWT_SECRET", "default_secret_key"),
		SessionTTLDays: atoi(getenv("SESSION_TTL_DAYS", "5")),
		CookieTTLDays:  atoi(getenv("COOKIE_TTL_DAYS", "7")),
		BcryptCost:     atoi(getenv("BCRYPT_COST", "10")),
		ClientURL:      getenv("CLIENT_URL", "http://localhost:5173"),

		RedisAddr:       getenv("REDIS_ADDR", ""),
		RateLimitPerMin: atoi(getenv("RATE_LIMIT_PER_MIN", "10")),

		RabbitURL: getenv("RABBIT_URL", ""),
		Exchange:  getenv("RABBIT_EXCHANGE", "jobnest.events"),

		Queue:       getenv("RABBIT_QUEUE", "notifyq"),
		BindKey:     getenv("RABBIT_BIND_KEY", "#"),
		Concurrency: atoi(getenv("RABBIT_CONCURRENCY", "4")),

		PostmarkServerToken:  getenv("POSTMARK_SERVER_TOKEN", ""),
		PostmarkAccountToken: getenv("POSTMARK_ACCOUNT_TOKEN", ""),
		SenderEmail:          getenv("SENDER_EMAIL", "hello@jobnest.dev"),
		SenderName:           getenv("SENDER_NAME", "Job Nest"),

		Prod: getenv("APP_ENV", "dev") == "prod",
	}
}

func atoi(s string) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return 0
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
