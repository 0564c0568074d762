package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds every configuration value the application needs. It is
// built once in main and passed down; nothing reads the environment later.
type AppConfig struct {
	Port        string
	Env         string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	JWTSecret []byte

	CloudinaryURL            string
	PlaceholderImageURL      string
	DefaultProfilePictureURL string
}

// Load reads configuration from a .env file or the environment.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENVIRONMENT", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "giftbouqet"),

		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		PlaceholderImageURL: getEnv("PLACEHOLDER_IMAGE_URL",
			"https://res.cloudinary.com/gift-bouqet/image/upload/assets/image-placeholder.jpg"),
		DefaultProfilePictureURL: getEnv("DEFAULT_PROFILE_PICTURE_URL",
			"https://res.cloudinary.com/gift-bouqet/image/upload/assets/profilepicture/pp-default.jpg"),
	}

	secret := getEnv("JWT_SECRET", "")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	cfg.JWTSecret = []byte(secret)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
