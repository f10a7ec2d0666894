package env

import (
	"os"
	"strconv"
	"time"
)

type Env struct {
	Server      ServerConfig
	MongoDB     MongoDBConfig
	GoogleBooks GoogleBooksConfig
}

type ServerConfig struct {
	Port int
}

type MongoDBConfig struct {
	URI string
	DB  string
}

type GoogleBooksConfig struct {
	BaseURL string
	Timeout time.Duration
}

const (
	defaultServerPort         = 8080
	defaultMongoDBURI         = "mongodb://localhost:27017"
	defaultMongoDBName        = "book_catalog"
	defaultGoogleBooksURL     = "https://www.googleapis.com/books/v1/volumes"
	defaultGoogleBooksTimeout = 15 * time.Second
)

var setupEnv = false
var env = Env{}

func GetEnv() (*Env, error) {

	if !setupEnv {

		serverPort, err := intFromEnv("SERVER_PORT", defaultServerPort)
		if err != nil {
			return nil, err
		}

		timeoutSeconds, err := intFromEnv("GOOGLE_BOOKS_TIMEOUT", int(defaultGoogleBooksTimeout/time.Second))
		if err != nil {
			return nil, err
		}

		env = Env{
			Server: ServerConfig{
				Port: serverPort,
			},
			MongoDB: MongoDBConfig{
				URI: stringFromEnv("MONGODB_URI", defaultMongoDBURI),
				DB:  stringFromEnv("MONGODB_NAME", defaultMongoDBName),
			},
			GoogleBooks: GoogleBooksConfig{
				BaseURL: stringFromEnv("GOOGLE_BOOKS_URL", defaultGoogleBooksURL),
				Timeout: time.Duration(timeoutSeconds) * time.Second,
			},
		}

		setupEnv = true
	}

	return &env, nil
}

func stringFromEnv(key, fallback string) string {

	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {

	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}
