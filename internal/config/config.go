package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	RemoteURL     string // hosted backend project URL
	RemoteAnonKey string // public (anon) API key
	LocalDB       string // sqlite file backing client-persisted state
	LogLevel      string
	MediaBucket   string
	// Local admin credential, used only when no remote URL is configured.
	AdminEmail        string
	AdminPasswordHash string // bcrypt
}

func Load() Config {
	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:              getenv("PORT", "8080"),
		RemoteURL:         os.Getenv("REMOTE_URL"),
		RemoteAnonKey:     os.Getenv("REMOTE_ANON_KEY"),
		LocalDB:           getenv("LOCAL_DB", "alwanstore.db"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		MediaBucket:       getenv("MEDIA_BUCKET", "media"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
	log.Printf("[config] PORT=%s REMOTE_URL=%s LOCAL_DB=%s MEDIA_BUCKET=%s", cfg.Port, cfg.RemoteURL, cfg.LocalDB, cfg.MediaBucket)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
