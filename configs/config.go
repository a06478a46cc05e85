package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string
	DBSource string
	Port     string

	// Asset storage: "disk" keeps uploads under UploadDir and serves them
	// from /uploads; "s3" pushes to an S3-compatible endpoint.
	StorageDriver string
	UploadDir     string
	PublicBaseURL string

	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string

	SeedSampleData bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	return &Config{
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBSource:       getEnv("DB_SOURCE", "foodo.db"),
		Port:           getEnv("PORT", "8000"),
		StorageDriver:  getEnv("STORAGE_DRIVER", "disk"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3Region:       getEnv("S3_REGION", "auto"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
		SeedSampleData: getEnv("SEED_SAMPLE_DATA", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
