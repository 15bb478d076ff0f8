package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	JWT      JWTConfig
	Ai       AIConfig
	Search   SearchConfig
	Blob     BlobConfig
	Features FeatureFlags
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type StoreConfig struct {
	// Driver selects the document store backend: "postgres" or "mongo".
	Driver   string
	DSN      string
	MongoURI string
	MongoDB  string
}

type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
	Expiry   time.Duration
}

type AIConfig struct {
	// Provider selects the completion backend: "openai", "azure" or "ollama".
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
}

type SearchConfig struct {
	// Provider selects the search backend: "azure" or "bleve".
	Provider  string
	Endpoint  string
	IndexName string
	APIKey    string
	BlevePath string
}

type BlobConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

type FeatureFlags struct {
	EnableUserProfiling bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Store: StoreConfig{
			Driver:   getEnv("STORE_DRIVER", "postgres"),
			DSN:      getEnv("DB_CONNECTION_STRING", ""),
			MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
			MongoDB:  getEnv("MONGO_DATABASE", "aichat"),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", "default_secret"),
			Issuer:   getEnv("JWT_ISSUER", "ai-chat-be"),
			Audience: getEnv("JWT_AUDIENCE", "ai-chat-client"),
			Expiry:   time.Duration(getEnvAsInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
		},
		Ai: AIConfig{
			Provider: getEnv("LLM_PROVIDER", "openai"),
			Model:    getEnv("LLM_MODEL", "gpt-4o-mini"),
			BaseURL:  getEnv("LLM_BASE_URL", ""),
			APIKey:   getEnv("LLM_API_KEY", ""),
		},
		Search: SearchConfig{
			Provider:  getEnv("SEARCH_PROVIDER", "bleve"),
			Endpoint:  getEnv("SEARCH_ENDPOINT", ""),
			IndexName: getEnv("SEARCH_INDEX_NAME", "documents"),
			APIKey:    getEnv("SEARCH_API_KEY", ""),
			BlevePath: getEnv("SEARCH_BLEVE_PATH", "search.bleve"),
		},
		Blob: BlobConfig{
			Endpoint:  getEnv("BLOB_ENDPOINT", ""),
			Region:    getEnv("BLOB_REGION", "us-east-1"),
			Bucket:    getEnv("BLOB_BUCKET", "chat-files"),
			AccessKey: getEnv("BLOB_ACCESS_KEY", ""),
			SecretKey: getEnv("BLOB_SECRET_KEY", ""),
		},
		Features: FeatureFlags{
			EnableUserProfiling: getEnvAsBool("ENABLE_USER_PROFILING", false),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
