package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"safarsaathi/models"
)

var (
	DB        *gorm.DB
	AppConfig Config
	envLoaded bool
)

type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address"`
	Password string `json:"-"`
	DB       int    `json:"db"`
}

type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// Store drivers. The hosted row store is the default; postgres is for
// self-hosted deployments writing into their own database.
const (
	StoreDriverSupabase = "supabase"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	Environment string `json:"environment"`
	ServerPort  string `json:"server_port"`

	// Origins allowed to call the lead API (the landing page hosts).
	AllowedOrigins []string `json:"allowed_origins"`

	StoreDriver string `json:"store_driver"`

	// Supabase credentials: either set directly, or fetched lazily from
	// ConfigEndpointURL by the store provider.
	SupabaseURL       string `json:"supabase_url"`
	SupabaseAnonKey   string `json:"-"`
	ConfigEndpointURL string `json:"config_endpoint_url"`

	DBHost         string `json:"db_host"`
	DBPort         string `json:"db_port"`
	DBUser         string `json:"db_user"`
	DBPassword     string `json:"-"`
	DBName         string `json:"db_name"`
	DBSSLMode      string `json:"db_ssl_mode"`
	DBMaxIdleConns int    `json:"db_max_idle_conns"`
	DBMaxOpenConns int    `json:"db_max_open_conns"`

	Redis RedisConfig `json:"redis"`
	SMTP  SMTPConfig  `json:"smtp"`

	FromEmail  string `json:"from_email"`
	SalesEmail string `json:"sales_email"`

	SentryDSN string `json:"-"`

	// Max lead submissions per IP per minute.
	RateLimitLeadSubmit int `json:"rate_limit_lead_submit"`
}

func init() {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()
	envLoaded = true
}

func LoadConfig() error {
	AppConfig = Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		ServerPort:     getEnv("SERVER_PORT", "5000"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		StoreDriver: getEnv("STORE_DRIVER", StoreDriverSupabase),

		SupabaseURL:       getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey:   getEnv("SUPABASE_ANON_KEY", ""),
		ConfigEndpointURL: getEnv("CONFIG_ENDPOINT_URL", ""),

		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "safarsaathi"),
		DBSSLMode:      getEnv("DB_SSL_MODE", "disable"),
		DBMaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 100),

		Redis: RedisConfig{
			Enabled:  getEnv("REDIS_ENABLED", "false") == "true",
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
		},

		FromEmail:  getEnv("FROM_EMAIL", "no-reply@safarsaathi.in"),
		SalesEmail: getEnv("SALES_EMAIL", ""),

		SentryDSN: getEnv("SENTRY_DSN", ""),

		RateLimitLeadSubmit: getEnvAsInt("RATE_LIMIT_LEAD_SUBMIT", 5),
	}

	// Validate required configurations
	switch AppConfig.StoreDriver {
	case StoreDriverSupabase:
		hasStatic := AppConfig.SupabaseURL != "" && AppConfig.SupabaseAnonKey != ""
		if !hasStatic && AppConfig.ConfigEndpointURL == "" {
			return fmt.Errorf("supabase driver needs SUPABASE_URL and SUPABASE_ANON_KEY, or CONFIG_ENDPOINT_URL")
		}
	case StoreDriverPostgres:
		if AppConfig.DBPassword == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres store driver")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", AppConfig.StoreDriver)
	}

	logConfig()
	return nil
}

// ConnectDB opens the Postgres connection for the postgres store driver and
// migrates the leads table.
func ConnectDB() error {
	log.Println("Attempting to connect to database...")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		AppConfig.DBHost,
		AppConfig.DBPort,
		AppConfig.DBUser,
		AppConfig.DBPassword,
		AppConfig.DBName,
		AppConfig.DBSSLMode,
	)
	log.Println("Using connection string:", maskPassword(dsn))

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(AppConfig.DBMaxIdleConns)
	sqlDB.SetMaxOpenConns(AppConfig.DBMaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	log.Println("✅ Successfully connected to the database")
	log.Println("🔄 Starting database migration...")
	if err := DB.AutoMigrate(&models.Lead{}); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}
	log.Println("✅ Database migration completed")
	return nil
}

// Helper functions
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if !envLoaded && fallback == "" {
		log.Printf("⚠️ Environment variable %s not found and no fallback provided", key)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func maskPassword(dsn string) string {
	const passwordMarker = "password="
	startIdx := strings.Index(dsn, passwordMarker)
	if startIdx == -1 {
		return dsn
	}

	startIdx += len(passwordMarker)
	endIdx := strings.IndexAny(dsn[startIdx:], " ")
	if endIdx == -1 {
		return dsn[:startIdx] + "*****"
	}
	return dsn[:startIdx] + "*****" + dsn[startIdx+endIdx:]
}

func logConfig() {
	log.Println("🔧 Loaded configuration:")
	log.Printf("Environment: %s", AppConfig.Environment)
	log.Printf("Server Port: %s", AppConfig.ServerPort)
	log.Printf("Store driver: %s", AppConfig.StoreDriver)
	switch AppConfig.StoreDriver {
	case StoreDriverSupabase:
		if AppConfig.SupabaseURL != "" {
			log.Printf("Supabase: %s (static credentials)", AppConfig.SupabaseURL)
		} else {
			log.Printf("Supabase: credentials from %s", AppConfig.ConfigEndpointURL)
		}
	case StoreDriverPostgres:
		log.Printf("Database: %s@%s:%s/%s",
			AppConfig.DBUser,
			AppConfig.DBHost,
			AppConfig.DBPort,
			AppConfig.DBName)
	}
	log.Printf("Redis rate-limit storage: %t, lead notifications: %t",
		AppConfig.Redis.Enabled,
		AppConfig.SMTP.Host != "" && AppConfig.SalesEmail != "")
}
