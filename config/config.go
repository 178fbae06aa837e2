package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	JWT          JWTConfig
	Admin        AdminConfig
	Verification VerificationConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessSecret string
	AccessExpiry time.Duration
	Issuer       string
}

// AdminConfig holds the single administrator credential. PasswordHash is a bcrypt hash.
type AdminConfig struct {
	Email        string
	PasswordHash string
	// Login attempts allowed per client IP within LoginWindow.
	LoginLimit  int
	LoginWindow time.Duration
}

// VerificationConfig names where the verification code lives and how its field is presented.
type VerificationConfig struct {
	OptionName   string
	Page         string
	SectionID    string
	SectionTitle string
	Label        string
	Description  string
}

// Load builds the configuration from defaults, an optional .env file and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] warning: failed to read .env: %v", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         "8080",
			Env:          "development",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             "root:@tcp(localhost:3306)/fbverify?charset=utf8mb4&parseTime=True&loc=Local",
			MaxIdleConns:    5,
			MaxOpenConns:    20,
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			AccessSecret: "change-me-in-production",
			AccessExpiry: 12 * time.Hour,
			Issuer:       "fbverify",
		},
		Admin: AdminConfig{
			Email:       "admin@example.com",
			LoginLimit:  10,
			LoginWindow: time.Minute,
		},
		Verification: VerificationConfig{
			OptionName:   "hm_facebook_domain_verification_code",
			Page:         "general",
			SectionID:    "hm_facebook_verification",
			SectionTitle: "Facebook Domain Verification",
			Label:        "Verification code",
			Description:  "Enter your domain verification code from Facebook.",
		},
	}

	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.Env, "APP_ENV")
	setString(&cfg.Database.DSN, "DATABASE_DSN")
	setString(&cfg.JWT.AccessSecret, "JWT_ACCESS_SECRET")
	setString(&cfg.Admin.Email, "ADMIN_EMAIL")
	setString(&cfg.Admin.PasswordHash, "ADMIN_PASSWORD_HASH")
	setString(&cfg.Verification.OptionName, "FB_VERIFICATION_OPTION")
	if v := os.Getenv("ADMIN_LOGIN_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Admin.LoginLimit = n
		}
	}
	return cfg
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
