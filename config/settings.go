package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Settings holds everything read from the environment at startup.
type Settings struct {
	Port                  string
	TokenKey              string
	TokenTTL              time.Duration
	PageSize              int
	CORSOrigins           string
	HousekeepingCron      string
	RegisterRequiresToken bool
	GinMode               string

	DBDriver       string
	DBLogLevel     string
	DBMaxOpenConns int
	DBMaxIdleConns int
	SQLitePath     string

	SeedAdminPhone    string
	SeedAdminPassword string
}

// LoadEnv reads .env when present. A missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(envOrDefault(key, ""))
	if err != nil {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	v, err := strconv.ParseBool(envOrDefault(key, ""))
	if err != nil {
		return def
	}
	return v
}

// LoadSettings builds Settings from the environment, applying defaults.
func LoadSettings() Settings {
	ttl, err := time.ParseDuration(envOrDefault("TOKEN_TTL", "5h"))
	if err != nil {
		log.Printf("⚠️  invalid TOKEN_TTL, using 5h: %v", err)
		ttl = 5 * time.Hour
	}
	pageSize := envInt("PAGE_SIZE", 20)
	if pageSize <= 0 {
		pageSize = 20
	}

	cronSpec := "0 6 * * *"
	if v, ok := os.LookupEnv("HOUSEKEEPING_CRON"); ok {
		cronSpec = strings.TrimSpace(v)
	}

	return Settings{
		Port:                  envOrDefault("PORT", "8080"),
		TokenKey:              os.Getenv("TOKEN_KEY"),
		TokenTTL:              ttl,
		PageSize:              pageSize,
		CORSOrigins:           os.Getenv("CORS_ORIGINS"),
		HousekeepingCron:      cronSpec,
		RegisterRequiresToken: envBool("REGISTER_REQUIRES_TOKEN", false),
		GinMode:               os.Getenv("GIN_MODE"),

		DBDriver:       strings.ToLower(envOrDefault("DB_DRIVER", "mysql")),
		DBLogLevel:     strings.ToLower(envOrDefault("DB_LOG_LEVEL", "warn")),
		DBMaxOpenConns: envInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: envInt("DB_MAX_IDLE_CONNS", 10),
		SQLitePath:     envOrDefault("SQLITE_PATH", "hotel.db"),

		SeedAdminPhone:    envOrDefault("SEED_ADMIN_PHONE", "+254700000000"),
		SeedAdminPassword: envOrDefault("SEED_ADMIN_PASSWORD", "admin123"),
	}
}
