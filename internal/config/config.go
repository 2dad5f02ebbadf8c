package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"

	BlobLocal = "local"
	BlobMinio = "minio"
)

var (
	AppName    = "Design Review System API"
	AppVersion string
	AppEnv     string
	LogLevel   string
	ServerPort string
	GinMode    string

	StoreDriver string
	DbHost      string
	DbPort      string
	DbUser      string
	DbPassword  string
	DbName      string
	DbSSLMode   string

	BlobDriver     string
	UploadDir      string
	PublicBaseURL  string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	CorsOrigins []string

	UploadRateLimit float64
	UploadRateBurst int

	JwtSecret     string
	Issuer        string
	DefaultUserID string

	SeedData bool
	SeedFile string

	AuditRetentionDays   int
	AuditCleanupSchedule string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppVersion = getEnv("APP_VERSION", "1.0.0")
	AppEnv = getEnv("APP_ENV", "development")
	LogLevel = getEnv("LOG_LEVEL", "info")
	ServerPort = getEnv("SERVER_PORT", "8000")
	GinMode = getEnv("GIN_MODE", "release")

	StoreDriver = strings.ToLower(getEnv("STORE_DRIVER", StoreMemory))
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "design_review")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")

	BlobDriver = strings.ToLower(getEnv("BLOB_DRIVER", BlobLocal))
	UploadDir = getEnv("UPLOAD_DIR", "uploads")
	PublicBaseURL = strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8000"), "/")
	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "drawings")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	CorsOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001,http://localhost:5173"))

	UploadRateLimit, _ = strconv.ParseFloat(getEnv("UPLOAD_RATE_LIMIT", "5"), 64)
	UploadRateBurst = getEnvAsInt("UPLOAD_RATE_BURST", 10)

	JwtSecret = getEnv("JWT_SECRET", "")
	Issuer = getEnv("ISSUER", "design-review")
	DefaultUserID = getEnv("DEFAULT_USER_ID", "user-1")

	SeedData, _ = strconv.ParseBool(getEnv("SEED_DATA", "true"))
	SeedFile = getEnv("SEED_FILE", "")

	AuditRetentionDays = getEnvAsInt("AUDIT_RETENTION_DAYS", 90)
	AuditCleanupSchedule = getEnv("AUDIT_CLEANUP_SCHEDULE", "@daily")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid integer for %s, using default: %d", key, fallback)
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
