package objects

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kritsada-kn/book-catalog/validator"
)

type Genre string

const (
	Fiction    Genre = "FICTION"
	NonFiction Genre = "NON_FICTION"
	Mystery    Genre = "MYSTERY"
	Fantasy    Genre = "FANTASY"
	Romance    Genre = "ROMANCE"
	SciFi      Genre = "SCI_FI"
	Others     Genre = "OTHERS"
)

// Genres lists every supported genre name.
func Genres() []Genre {
	return []Genre{Fiction, NonFiction, Mystery, Fantasy, Romance, SciFi, Others}
}

var isbnPattern = regexp.MustCompile(`^\d{13}$`)

// DateLayout is the wire and storage format of publication dates.
const DateLayout = "2006-01-02"

type Book struct {
	BookID          string `json:"id" bson:"book_id,omitempty"`
	Title           string `json:"title" bson:"title,omitempty"`
	Author          string `json:"author" bson:"author,omitempty"`
	PublicationDate string `json:"publicationDate" bson:"publication_date,omitempty"`
	ISBN            string `json:"isbn" bson:"isbn,omitempty"`
	Genre           Genre  `json:"genre" bson:"genre,omitempty"`
	Rating          int    `json:"rating" bson:"rating,omitempty"`
}

func (b Book) GetID() string {
	return b.BookID
}

// Validate checks every field constraint and returns the violations keyed by
// JSON field name. An empty map means the book may be persisted.
func (b Book) Validate() map[string]string {

	v := validator.New()

	// Limits count characters, not bytes, matching the collection schema's
	// maxLength semantics.
	v.Check(strings.TrimSpace(b.Title) != "", "title", "Title is required")
	v.Check(utf8.RuneCountInString(b.Title) <= 100, "title", "Title must be less than 100 characters")

	v.Check(strings.TrimSpace(b.Author) != "", "author", "Author is required")
	v.Check(utf8.RuneCountInString(b.Author) <= 50, "author", "Author must be less than 50 characters")

	v.Check(b.PublicationDate != "", "publicationDate", "Publication date is required")
	if b.PublicationDate != "" {
		_, err := time.Parse(DateLayout, b.PublicationDate)
		v.Check(err == nil, "publicationDate", "Publication date must be a valid YYYY-MM-DD date")
	}

	v.Check(b.ISBN != "", "isbn", "ISBN is required")
	if b.ISBN != "" {
		v.Check(validator.Matches(b.ISBN, isbnPattern), "isbn", "ISBN must be a 13-digit number")
	}

	v.Check(b.Genre != "", "genre", "Genre is required")
	if b.Genre != "" {
		v.Check(validator.In(b.Genre, Genres()...), "genre", "Genre must be one of the supported genres")
	}

	v.Check(b.Rating != 0, "rating", "Rating is required")
	if b.Rating != 0 {
		v.Check(b.Rating >= 1, "rating", "Rating must be at least 1")
		v.Check(b.Rating <= 5, "rating", "Rating cannot be more than 5")
	}

	if v.Valid() {
		return nil
	}

	return v.Violations
}
