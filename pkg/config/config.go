package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Storage StorageConfig
	Site    SiteConfig
}

type ServerConfig struct {
	Port string
}

// APIConfig harici Apps Script endpoint adreslerini tutar
type APIConfig struct {
	ListingsURL string
	LeadsURL    string
	// ListingsURL boşsa demo modunda lokal dosyadan okunur
	LocalFeedPath string
}

type StorageConfig struct {
	// Göreli resim yollarının önüne eklenen S3 base URL'i
	BaseURL string
}

type SiteConfig struct {
	// Sitemap linkleri için kullanılan public adres
	BaseURL string
}

func Load() *Config {
	godotenv.Load() // .env dosyasını yükle

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		API: APIConfig{
			ListingsURL:   getEnv("LISTINGS_URL", ""),
			LeadsURL:      getEnv("LEADS_URL", ""),
			LocalFeedPath: getEnv("LOCAL_FEED_PATH", "pkg/data/properties.json"),
		},
		Storage: StorageConfig{
			BaseURL: getEnv("S3_BASE_URL", "https://albadri-demo.s3.us-east-1.amazonaws.com/"),
		},
		Site: SiteConfig{
			BaseURL: getEnv("SITE_BASE_URL", "http://localhost:3000"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
