package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL connection settings for the review history
// store. Leaving Host empty disables persistence entirely; the service then
// keeps history in memory for the lifetime of the process.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a database host has been configured.
func (c DatabaseConfig) Enabled() bool { return c.Host != "" }

// MinIOConfig holds object storage settings for archiving reviewed documents.
// Leaving Endpoint empty disables archival; reviewed copies are then only
// returned inline.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether an object storage endpoint has been configured.
func (c MinIOConfig) Enabled() bool { return c.Endpoint != "" }

// OpenAIConfig holds settings for the optional generation/embedding provider.
// An empty APIKey disables the retrieval-augmented detection strategy and the
// vector index build.
type OpenAIConfig struct {
	APIKey     string
	BaseURL    string
	ChatModel  string
	EmbedModel string
}

// CorpusConfig holds the on-disk locations of the reference corpus artifacts
// produced by the offline build and consumed read-only by the detector.
type CorpusConfig struct {
	SeedPDFPath       string
	TemplateDir       string
	TemplateIndexPath string
	VectorDir         string
	RetrievalK        int
	ContextBudget     int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Database DatabaseConfig
	MinIO    MinIOConfig
	OpenAI   OpenAIConfig
	Corpus   CorpusConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "reviewed-documents"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		OpenAI: OpenAIConfig{
			APIKey:     getEnv("OPENAI_API_KEY", ""),
			BaseURL:    getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			ChatModel:  getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			EmbedModel: getEnv("OPENAI_EMBED_MODEL", "text-embedding-3-small"),
		},
		Corpus: CorpusConfig{
			SeedPDFPath:       getEnv("CORPUS_SEED_PDF", "Data Sources.pdf"),
			TemplateDir:       getEnv("CORPUS_TEMPLATE_DIR", "templates"),
			TemplateIndexPath: getEnv("CORPUS_TEMPLATE_INDEX", "templates_texts.json"),
			VectorDir:         getEnv("CORPUS_VECTOR_DIR", "adgm_vector_index"),
			RetrievalK:        getEnvInt("CORPUS_RETRIEVAL_K", 3),
			ContextBudget:     getEnvInt("CORPUS_CONTEXT_BUDGET", 4000),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
