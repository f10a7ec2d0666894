// Package books orchestrates book creation: it mints a human-readable
// identifier from the books sequence and hands the record to the store.
package books

import (
	"fmt"

	"github.com/kritsada-kn/book-catalog/objects"
)

// BooksSequenceName is the counter every book identifier is minted from.
const BooksSequenceName = "books_sequence"

// BookStore is the keyed persistence capability the service and API need.
type BookStore interface {
	Save(book objects.Book) (objects.Book, error)
	GetByID(bookID string) (objects.Book, error)
	All() ([]objects.Book, error)
	ExistsByID(bookID string) (bool, error)
	Delete(bookID string) error
}

// Sequencer issues the next value of a named monotonic counter.
type Sequencer interface {
	Next(name string) (int64, error)
}

// FormatBookID renders a sequence value as a catalog identifier,
// zero-padded to three digits and widening naturally from B-1000 on.
func FormatBookID(seq int64) string {
	return fmt.Sprintf("B-%03d", seq)
}

type BookService struct {
	store     BookStore
	sequencer Sequencer
}

func NewBookService(store BookStore, sequencer Sequencer) *BookService {

	return &BookService{
		store:     store,
		sequencer: sequencer,
	}
}

// CreateBook assigns the next identifier to the draft and persists it.
// It must stay the sole caller of the books sequence, otherwise identifier
// uniqueness is lost.
func (s BookService) CreateBook(draft objects.Book) (objects.Book, error) {

	seq, err := s.sequencer.Next(BooksSequenceName)
	if err != nil {
		return objects.Book{}, err
	}

	draft.BookID = FormatBookID(seq)

	return s.store.Save(draft)
}
