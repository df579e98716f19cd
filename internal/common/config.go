package common

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/dan404cipher/hireaccel-v2-sub006/constants"
)

// Config holds all application configuration.
type Config struct {
	Extract ExtractConfig
	OCR     OCRConfig
	LLM     LLMConfig
}

// ExtractConfig bounds the document extraction layer.
type ExtractConfig struct {
	MaxFileBytes int64
	PDFTimeout   time.Duration
	DocxTimeout  time.Duration
}

// OCRConfig holds OCR worker configuration.
type OCRConfig struct {
	Tesseract        string // binary name or absolute path; if empty -> "tesseract"
	Pdftoppm         string // binary name or absolute path; if empty -> "pdftoppm"
	Lang             string // default "eng"
	DPI              int    // rasterization DPI for scanned PDFs, default 300
	MaxPages         int    // 0 = no limit
	TessdataDir      string
	ArtifactCacheDir string
	StartTimeout     time.Duration
	RecognizeTimeout time.Duration
}

// LLMConfig holds completion-backend configuration.
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			MaxFileBytes: getEnvAsInt64("MAX_FILE_BYTES", constants.MaxUploadBytes),
			PDFTimeout:   getEnvAsDuration("PDF_TIMEOUT", 30*time.Second),
			DocxTimeout:  getEnvAsDuration("DOCX_TIMEOUT", 20*time.Second),
		},
		OCR: OCRConfig{
			Tesseract:        getEnv("TESSERACT_BIN", "tesseract"),
			Pdftoppm:         getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Lang:             getEnv("TESSERACT_LANG", "eng"),
			DPI:              getEnvAsInt("OCR_DPI", 300),
			MaxPages:         getEnvAsInt("OCR_MAX_PAGES", 0),
			TessdataDir:      getEnv("TESSDATA_PREFIX", ""),
			ArtifactCacheDir: getEnv("ARTIFACT_CACHE_DIR", "./tmp"),
			StartTimeout:     getEnvAsDuration("OCR_START_TIMEOUT", 10*time.Second),
			RecognizeTimeout: getEnvAsDuration("OCR_RECOGNIZE_TIMEOUT", 30*time.Second),
		},
		LLM: LLMConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
	}
}

// Validate checks the loaded configuration before the pipeline starts.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return errors.New("config: OPENAI_API_KEY is required")
	}
	if c.Extract.MaxFileBytes <= 0 {
		return errors.New("config: MAX_FILE_BYTES must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
