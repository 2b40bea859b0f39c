package configs

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const developmentSecret = "gelistirme-ortami-gizli-anahtar"

// AppConfig uygulamanın tüm çalışma zamanı ayarlarını taşır.
type AppConfig struct {
	Env  string
	Port string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DBTimeZone  string

	SessionSecret string
	SessionMaxAge time.Duration

	UploadDir      string
	UploadBaseURL  string
	UploadMaxBytes int64

	CORSAllowOrigins string
}

// Load .env dosyasını (varsa) yükler ve ayarları ortam değişkenlerinden okur.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf(".env dosyası okunamadı: %w", err)
	}

	v := viper.New()
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "siteyonetim")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "Europe/Istanbul")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_MAX_AGE", 30*24*time.Hour)
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("UPLOAD_BASE_URL", "/uploads")
	v.SetDefault("UPLOAD_MAX_BYTES", int64(50<<20))
	v.SetDefault("CORS_ALLOW_ORIGINS", "")
	v.AutomaticEnv()

	cfg := &AppConfig{
		Env:              v.GetString("APP_ENV"),
		Port:             v.GetString("APP_PORT"),
		DatabaseURL:      v.GetString("DATABASE_URL"),
		DBHost:           v.GetString("DB_HOST"),
		DBPort:           v.GetString("DB_PORT"),
		DBUser:           v.GetString("DB_USER"),
		DBPassword:       v.GetString("DB_PASSWORD"),
		DBName:           v.GetString("DB_NAME"),
		DBSSLMode:        v.GetString("DB_SSLMODE"),
		DBTimeZone:       v.GetString("DB_TIMEZONE"),
		SessionSecret:    v.GetString("SESSION_SECRET"),
		SessionMaxAge:    v.GetDuration("SESSION_MAX_AGE"),
		UploadDir:        v.GetString("UPLOAD_DIR"),
		UploadBaseURL:    v.GetString("UPLOAD_BASE_URL"),
		UploadMaxBytes:   v.GetInt64("UPLOAD_MAX_BYTES"),
		CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
	}

	if cfg.SessionSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, errors.New("SESSION_SECRET tanımlanmalıdır")
		}
		cfg.SessionSecret = developmentSecret
	}
	return cfg, nil
}

// IsDevelopment geliştirme ortamında çalışılıp çalışılmadığını döndürür.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "" || c.Env == "development"
}

// DSN PostgreSQL bağlantı cümlesini döndürür. DATABASE_URL tanımlıysa o kullanılır.
func (c *AppConfig) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode, c.DBTimeZone)
}
