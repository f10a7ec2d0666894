package books

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	serverError "github.com/kritsada-kn/book-catalog/errors"
	"github.com/kritsada-kn/book-catalog/objects"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu    sync.Mutex
	books map[string]objects.Book
}

func newMemoryStore() *memoryStore {
	return &memoryStore{books: map[string]objects.Book{}}
}

func (s *memoryStore) Save(book objects.Book) (objects.Book, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.books[book.BookID] = book
	return book, nil
}

func (s *memoryStore) GetByID(bookID string) (objects.Book, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[bookID]
	if !ok {
		return objects.Book{}, serverError.ObjectIDNotFoundError.New(bookID)
	}

	return book, nil
}

func (s *memoryStore) All() ([]objects.Book, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	var bookList []objects.Book
	for _, book := range s.books {
		bookList = append(bookList, book)
	}

	return bookList, nil
}

func (s *memoryStore) ExistsByID(bookID string) (bool, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.books[bookID]
	return ok, nil
}

func (s *memoryStore) Delete(bookID string) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[bookID]; !ok {
		return serverError.ObjectIDNotFoundError.New(bookID)
	}

	delete(s.books, bookID)
	return nil
}

type memorySequencer struct {
	value int64
}

func (s *memorySequencer) Next(name string) (int64, error) {
	return atomic.AddInt64(&s.value, 1), nil
}

type failingSequencer struct{}

func (failingSequencer) Next(name string) (int64, error) {
	return 0, serverError.StorageUnavailableError.New(fmt.Errorf("no connection"))
}

func TestFormatBookID(t *testing.T) {

	require.Equal(t, "B-001", FormatBookID(1))
	require.Equal(t, "B-042", FormatBookID(42))
	require.Equal(t, "B-999", FormatBookID(999))
	require.Equal(t, "B-1000", FormatBookID(1000))
}

func TestCreateBook(t *testing.T) {

	t.Run("Should assign sequential identifiers starting at B-001", func(t *testing.T) {

		store := newMemoryStore()
		service := NewBookService(store, &memorySequencer{})

		first, err := service.CreateBook(objects.Book{Title: "Dune", Author: "Frank Herbert"})
		require.NoError(t, err)
		require.Equal(t, "B-001", first.BookID)

		second, err := service.CreateBook(objects.Book{Title: "Dune Messiah", Author: "Frank Herbert"})
		require.NoError(t, err)
		require.Equal(t, "B-002", second.BookID)
	})

	t.Run("Should persist the book it returns", func(t *testing.T) {

		store := newMemoryStore()
		service := NewBookService(store, &memorySequencer{})

		created, err := service.CreateBook(objects.Book{Title: "Dune", Author: "Frank Herbert"})
		require.NoError(t, err)

		stored, err := store.GetByID(created.BookID)
		require.NoError(t, err)
		require.Equal(t, created, stored)
	})

	t.Run("Should assign distinct identifiers to concurrent creates", func(t *testing.T) {

		const creates = 50

		store := newMemoryStore()
		service := NewBookService(store, &memorySequencer{})

		ids := make(chan string, creates)

		var wg sync.WaitGroup
		for i := 0; i < creates; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				book, err := service.CreateBook(objects.Book{Title: "Dune", Author: "Frank Herbert"})
				require.NoError(t, err)
				ids <- book.BookID
			}()
		}
		wg.Wait()
		close(ids)

		seen := map[string]bool{}
		for id := range ids {
			require.Regexp(t, `^B-\d{3,}$`, id)
			require.False(t, seen[id], "identifier %s issued twice", id)
			seen[id] = true
		}
		require.Len(t, seen, creates)
	})

	t.Run("Should not persist anything when the sequence fails", func(t *testing.T) {

		store := newMemoryStore()
		service := NewBookService(store, failingSequencer{})

		_, err := service.CreateBook(objects.Book{Title: "Dune", Author: "Frank Herbert"})
		require.Error(t, err)

		bookList, err := store.All()
		require.NoError(t, err)
		require.Empty(t, bookList)
	})

	t.Run("Should widen identifiers past three digits", func(t *testing.T) {

		store := newMemoryStore()
		service := NewBookService(store, &memorySequencer{value: 999})

		book, err := service.CreateBook(objects.Book{Title: "Dune", Author: "Frank Herbert"})
		require.NoError(t, err)
		require.Equal(t, "B-1000", book.BookID)
	})
}
