package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	booksAPI "github.com/kritsada-kn/book-catalog/apis/books"
	"github.com/kritsada-kn/book-catalog/env"
	"github.com/kritsada-kn/book-catalog/googlebooks"
	booksModel "github.com/kritsada-kn/book-catalog/models/books"
	"github.com/kritsada-kn/book-catalog/models/counters"
	"github.com/kritsada-kn/book-catalog/mongodb"
	booksService "github.com/kritsada-kn/book-catalog/services/books"
)

func main() {

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	// Missing .env is fine, the environment may already be set.
	godotenv.Load()

	environment, err := env.GetEnv()
	if err != nil {
		slog.Error("Read environment failed", "error", err)
		return
	}

	conn, err := mongodb.InitConnection(environment.MongoDB.URI, environment.MongoDB.DB)
	if err != nil {
		slog.Error("Create MongoDB connection failed", "error", err)
		return
	}

	defer conn.Disconnect()

	newBooksModel, err := booksModel.NewBooksModel(conn)
	if err != nil {
		slog.Error("Create books model failed", "error", err)
		return
	}

	newCountersModel, err := counters.NewCountersModel(conn)
	if err != nil {
		slog.Error("Create counters model failed", "error", err)
		return
	}

	service := booksService.NewBookService(newBooksModel, newCountersModel)
	metadata := googlebooks.NewClient(environment.GoogleBooks.BaseURL, environment.GoogleBooks.Timeout)

	g := gin.Default()
	booksAPI.NewBooksAPI(service, newBooksModel, metadata).Register(g.Group("api/books"))

	if err := g.Run(fmt.Sprintf(":%d", environment.Server.Port)); err != nil {
		slog.Error("run server failed", "error", err)
		return
	}
}
