package config

import "os"

type Config struct {
	Port         string
	AWSRegion    string
	S3Bucket     string
	MapsAPIKey   string
	JWTSecret    string
	AllowOrigins string
}

// Load reads configuration from the environment. godotenv has already
// populated it from .env in main when one exists.
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		Port:         port,
		AWSRegion:    os.Getenv("AWS_REGION"),
		S3Bucket:     os.Getenv("S3_BUCKET_NAME"),
		MapsAPIKey:   os.Getenv("GOOGLE_MAPS_API_KEY"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AllowOrigins: os.Getenv("CORS_ALLOW_ORIGINS"),
	}
}
