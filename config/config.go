package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/purushotham2628/fitness-diet-app/models"
)

type Config struct {
	Port       string
	Env        string
	DBDriver   string // sqlite | postgres
	DBPath     string // sqlite file
	DBDSN      string // postgres DSN
	SessionTTL time.Duration
	StaticDir  string

	AWSRegion string
	SESEmail  string // sender address; empty disables the weekly report mail

	NutritionixAppID  string
	NutritionixAPIKey string

	ReportSchedule string // cron spec for the weekly report job
}

func Load() Config {
	// .env is optional; real deployments configure the environment directly.
	_ = godotenv.Load()

	return Config{
		Port:              getEnv("PORT", "3001"),
		Env:               getEnv("ENV", "development"),
		DBDriver:          getEnv("DB_DRIVER", "sqlite"),
		DBPath:            getEnv("DB_PATH", "fitness_diet.db"),
		DBDSN:             os.Getenv("DB_DSN"),
		SessionTTL:        getHoursEnv("SESSION_TTL_HOURS", 24),
		StaticDir:         getEnv("STATIC_DIR", "client/build"),
		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		SESEmail:          os.Getenv("SES_EMAIL"),
		NutritionixAppID:  os.Getenv("NUTRITIONIX_APP_ID"),
		NutritionixAPIKey: os.Getenv("NUTRITIONIX_API_KEY"),
		// Sundays 09:00 server time.
		ReportSchedule: getEnv("REPORT_SCHEDULE", "0 9 * * 0"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getHoursEnv(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Hour
		}
	}
	return time.Duration(fallback) * time.Hour
}

// InitDB opens the configured database and migrates the schema.
func InitDB(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Workout{},
		&models.Meal{},
		&models.CommunityPost{},
		&models.PostLike{},
		&models.Session{},
	); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	return db, nil
}
