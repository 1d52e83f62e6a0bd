package config

import (
	"log"
	"os"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Region          string
}

type Config struct {
	DatabasePath      string
	AdminUsername     string
	AdminPasswordHash string
	SecretKey         string
	Port              string
	R2                R2Config
}

func Load() *Config {
	cfg := &Config{
		DatabasePath:      getEnv("DATABASE", "photos.db"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		SecretKey:         os.Getenv("SECRET_KEY"),
		Port:              getEnv("PORT", "8080"),
		R2: R2Config{
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY"),
			SecretAccessKey: os.Getenv("R2_SECRET_KEY"),
			BucketName:      os.Getenv("R2_BUCKET_NAME"),
			PublicURL:       os.Getenv("R2_PUBLIC_URL"),
			Region:          "auto",
		},
	}

	required := map[string]string{
		"ADMIN_PASSWORD_HASH": cfg.AdminPasswordHash,
		"SECRET_KEY":          cfg.SecretKey,
		"R2_ACCOUNT_ID":       cfg.R2.AccountID,
		"R2_ACCESS_KEY":       cfg.R2.AccessKeyID,
		"R2_SECRET_KEY":       cfg.R2.SecretAccessKey,
		"R2_BUCKET_NAME":      cfg.R2.BucketName,
		"R2_PUBLIC_URL":       cfg.R2.PublicURL,
	}
	for key, value := range required {
		if value == "" {
			log.Fatalf("missing required environment variable %s", key)
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
