package books

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kritsada-kn/book-catalog/apis"
	serverError "github.com/kritsada-kn/book-catalog/errors"
	"github.com/kritsada-kn/book-catalog/objects"
	booksService "github.com/kritsada-kn/book-catalog/services/books"
)

// MetadataClient fetches supplementary details for a stored book from the
// external provider.
type MetadataClient interface {
	FetchDetails(ctx context.Context, title string, author string) (any, error)
}

type BooksAPI struct {
	service  *booksService.BookService
	store    booksService.BookStore
	metadata MetadataClient
}

func NewBooksAPI(service *booksService.BookService, store booksService.BookStore, metadata MetadataClient) *BooksAPI {

	return &BooksAPI{
		service:  service,
		store:    store,
		metadata: metadata,
	}
}

func (api *BooksAPI) Register(group *gin.RouterGroup) {

	group.POST("", api.Create)
	group.GET("", api.List)
	group.GET(":id", api.Get)
	group.DELETE(":id", api.Delete)
	group.GET(":id/more-details", api.MoreDetails)
}

// Create validates the draft, assigns the next identifier and persists the
// book. No side effect happens when validation fails.
func (api *BooksAPI) Create(ctx *gin.Context) {

	var draft objects.Book
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		apis.WriteErrorJSON(ctx, serverError.BookInvalidError.New().WithDetails(map[string]string{"body": "Request body must be a valid book JSON object"}))
		return
	}

	// The sequence is the only identifier mint.
	draft.BookID = ""

	if violations := draft.Validate(); len(violations) > 0 {
		apis.WriteErrorJSON(ctx, serverError.BookInvalidError.New().WithDetails(violations))
		return
	}

	book, err := api.service.CreateBook(draft)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, book)
}

func (api *BooksAPI) List(ctx *gin.Context) {

	bookList, err := api.store.All()
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	if len(bookList) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, bookList)
}

func (api *BooksAPI) Get(ctx *gin.Context) {

	bookID := ctx.Param("id")

	book, err := api.store.GetByID(bookID)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, book)
}

func (api *BooksAPI) Delete(ctx *gin.Context) {

	bookID := ctx.Param("id")

	exists, err := api.store.ExistsByID(bookID)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	if !exists {
		apis.WriteErrorJSON(ctx, serverError.ObjectIDNotFoundError.New(bookID))
		return
	}

	if err := api.store.Delete(bookID); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// MoreDetails answers with the external provider's search response for the
// stored book's title and author, passed through unmodified.
func (api *BooksAPI) MoreDetails(ctx *gin.Context) {

	bookID := ctx.Param("id")

	book, err := api.store.GetByID(bookID)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	details, err := api.metadata.FetchDetails(ctx.Request.Context(), book.Title, book.Author)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, details)
}
