package utils

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort      string `yaml:"APP_PORT"`
	Timezone     string `yaml:"TIMEZONE"`
	RateLimitMax string `yaml:"RATE_LIMIT_MAX"`

	// Key-value store: memory, redis, postgres or s3
	StoreDriver string `yaml:"STORE_DRIVER"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Redis configuration
	RedisURL       string `yaml:"REDIS_URL"`
	RedisNamespace string `yaml:"REDIS_NAMESPACE"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSS3Prefix  string `yaml:"AWS_S3_PREFIX"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Gemini API configuration
	GeminiAPIKey     string `yaml:"GEMINI_API_KEY"`
	GeminiModel      string `yaml:"GEMINI_MODEL"`
	GeminiBaseURL    string `yaml:"GEMINI_BASE_URL"`
	AssistantTimeout string `yaml:"ASSISTANT_TIMEOUT"`

	// API token signing
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
	NotifyEmail      string `yaml:"NOTIFY_EMAIL"`
}

var config Config

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"APP_PORT":           &c.AppPort,
		"TIMEZONE":           &c.Timezone,
		"RATE_LIMIT_MAX":     &c.RateLimitMax,
		"STORE_DRIVER":       &c.StoreDriver,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"REDIS_URL":          &c.RedisURL,
		"REDIS_NAMESPACE":    &c.RedisNamespace,
		"AWS_S3_BUCKET":      &c.AWSS3Bucket,
		"AWS_S3_REGION":      &c.AWSS3Region,
		"AWS_S3_PREFIX":      &c.AWSS3Prefix,
		"AWS_ACCESS_KEY":     &c.AWSAccessKey,
		"AWS_SECRET_KEY":     &c.AWSSecretKey,
		"GEMINI_API_KEY":     &c.GeminiAPIKey,
		"GEMINI_MODEL":       &c.GeminiModel,
		"GEMINI_BASE_URL":    &c.GeminiBaseURL,
		"ASSISTANT_TIMEOUT":  &c.AssistantTimeout,
		"JWT_SECRET":         &c.JWTSecret,
		"SMTP_HOST":          &c.SMTPHost,
		"SMTP_PORT":          &c.SMTPPort,
		"SMTP_SENDER_NAME":   &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &c.SMTPAuthPassword,
		"NOTIFY_EMAIL":       &c.NotifyEmail,
	}
}

func LoadConfig() {
	LoadConfigFile("config.yaml")
}

// LoadConfigFile reads .env into the environment, then the YAML file, then
// lets any non-empty environment variable override the YAML value.
func LoadConfigFile(path string) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error reading .env file: %s\n", err)
	}

	config = Config{}
	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	for key, field := range config.fields() {
		if value := os.Getenv(key); value != "" {
			*field = value
		}
	}
}

func GetConfig(key string) string {
	if field, ok := config.fields()[key]; ok {
		return *field
	}
	return ""
}

// SetConfig overrides a single key, used by the CLI and in tests.
func SetConfig(key, value string) {
	if field, ok := config.fields()[key]; ok {
		*field = value
	}
}

func GetConfigOrDefault(key, def string) string {
	if value := GetConfig(key); value != "" {
		return value
	}
	return def
}

func GetConfigInt(key string, def int) int {
	value, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return def
	}
	return value
}

func GetConfigDuration(key string, def time.Duration) time.Duration {
	value, err := time.ParseDuration(GetConfig(key))
	if err != nil || value <= 0 {
		return def
	}
	return value
}
