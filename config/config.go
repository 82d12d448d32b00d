// config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// DefaultAllowedOrigins are the storefront and admin origins allowed by CORS
var DefaultAllowedOrigins = []string{
	"https://elara-international.web.app",
	"http://localhost:5173",
	"https://elara-int-admin.web.app",
}

// Config holds all runtime settings, read from the environment
type Config struct {
	Port           string
	MongoURI       string
	DBUser         string
	DBPass         string
	DBCluster      string
	DBName         string
	AllowedOrigins []string
	RequestTimeout time.Duration
	Log            LogConfig
	PostmarkToken  string
	EmailSender    string
}

// LogConfig controls the zap logger
type LogConfig struct {
	Mode     string // "development" or "production"
	Level    string
	Filename string // rotated with lumberjack when set
}

// Load reads a .env file if present and then the process environment.
// It reports whether a .env file was found.
func Load() (*Config, bool) {
	dotenv := godotenv.Load() == nil
	return FromEnv(os.Getenv), dotenv
}

// FromEnv builds a Config from the given lookup function
func FromEnv(getenv func(string) string) *Config {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:           get("PORT", "5000"),
		MongoURI:       get("MONGODB_URI", ""),
		DBUser:         get("DB_USER", ""),
		DBPass:         get("DB_PASS", ""),
		DBCluster:      get("DB_CLUSTER", "cluster0.sltxx.mongodb.net"),
		DBName:         get("DB_NAME", "ElaraProductDB"),
		AllowedOrigins: DefaultAllowedOrigins,
		RequestTimeout: time.Duration(cast.ToInt(get("REQUEST_TIMEOUT", "10"))) * time.Second,
		Log: LogConfig{
			Mode:     get("LOG_MODE", "development"),
			Level:    get("LOG_LEVEL", "info"),
			Filename: get("LOG_FILE", ""),
		},
		PostmarkToken: get("POSTMARK_API_TOKEN", ""),
		EmailSender:   get("EMAIL_SENDER", ""),
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if origins := get("ALLOWED_ORIGINS", ""); origins != "" {
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	return cfg
}

// HasCredentials reports whether the store can be reached with the configured settings
func (c *Config) HasCredentials() bool {
	return c.MongoURI != "" || (c.DBUser != "" && c.DBPass != "")
}

// ConnectionURI returns MONGODB_URI when set, otherwise an Atlas SRV URI
// assembled from DB_USER, DB_PASS and DB_CLUSTER. Without credentials it
// falls back to a local server so the client can still be built.
func (c *Config) ConnectionURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	if c.DBUser == "" || c.DBPass == "" {
		return "mongodb://localhost:27017"
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPass), c.DBCluster)
}
