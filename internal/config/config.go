package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config carries every runtime setting. It is built once at startup and
// passed by reference into the layers that need it; nothing reads the
// environment after LoadConfig returns.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ServerPort string

	JWTSecret string

	// TokenTTLSeconds is the access token lifetime; tokens expire exactly
	// this many seconds after issuance.
	TokenTTLSeconds int

	// BcryptCost is the adaptive cost factor for password hashing.
	BcryptCost int

	RedisURL string
}

const defaultTokenTTL = 3600

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, relying on environment variables")
	}

	tokenTTL, err := strconv.Atoi(os.Getenv("TOKEN_TTL_SECONDS"))
	if err != nil || tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}

	bcryptCost, err := strconv.Atoi(os.Getenv("BCRYPT_COST"))
	if err != nil || bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  sslMode,

		ServerPort: serverPort,

		JWTSecret: os.Getenv("JWT_SECRET"),

		TokenTTLSeconds: tokenTTL,
		BcryptCost:      bcryptCost,

		RedisURL: redisURL,
	}, nil
}
