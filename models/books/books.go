package books

import (
	"context"
	"slices"

	"github.com/kritsada-kn/book-catalog/models"
	"github.com/kritsada-kn/book-catalog/mongodb"
	"github.com/kritsada-kn/book-catalog/objects"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const itemIDKey = "book_id"

// BooksModel persists book records in the "books" collection. The collection
// carries a $jsonSchema validator mirroring the field constraints, so a
// record that slipped past API-level validation is still rejected by the
// store.
type BooksModel struct {
	models.BaseModel[objects.Book]
}

var _ models.Model[objects.Book] = (*BooksModel)(nil)

func NewBooksModel(conn *mongodb.MongoDBConn) (*BooksModel, error) {

	booksModel := BooksModel{}

	err := booksModel.init(conn)
	if err != nil {
		return nil, err
	}

	return &booksModel, nil
}

func (m BooksModel) GetCollectionName() string {
	return "books"
}

func (m *BooksModel) init(conn *mongodb.MongoDBConn) error {

	err := m.initCollection(conn)
	if err != nil {
		return err
	}

	err = m.initIndexes(conn)
	if err != nil {
		return err
	}

	return m.Inject(conn.GetCollection(m.GetCollectionName()), itemIDKey)
}

func (m BooksModel) initCollection(conn *mongodb.MongoDBConn) error {

	bookDB := conn.GetDatabase()
	collectionName := m.GetCollectionName()

	filter := bson.D{}
	option := options.ListCollections()
	collectionNameList, err := bookDB.ListCollectionNames(context.TODO(), filter, option)
	if err != nil {
		return err
	}

	genres := objects.Genres()
	genreNames := make([]string, 0, len(genres))
	for _, genre := range genres {
		genreNames = append(genreNames, string(genre))
	}

	validator := bson.D{
		{
			Key: "$jsonSchema", Value: bson.M{
				"bsonType": "object",
				"required": []string{"book_id", "title", "author", "publication_date", "isbn", "genre", "rating"},
				"properties": bson.M{
					"book_id": bson.M{
						"bsonType":    "string",
						"pattern":     "^B-\\d{3,}$",
						"description": "Book ID must match B-000 format",
					},
					"title": bson.M{
						"bsonType":    "string",
						"minLength":   1,
						"maxLength":   100,
						"description": "Title must be a non-empty string of at most 100 characters",
					},
					"author": bson.M{
						"bsonType":    "string",
						"minLength":   1,
						"maxLength":   50,
						"description": "Author must be a non-empty string of at most 50 characters",
					},
					"publication_date": bson.M{
						"bsonType":    "string",
						"pattern":     "^\\d{4}-\\d{2}-\\d{2}$",
						"description": "Publication date must be a YYYY-MM-DD date",
					},
					"isbn": bson.M{
						"bsonType":    "string",
						"pattern":     "^\\d{13}$",
						"description": "ISBN must be a 13-digit number",
					},
					"genre": bson.M{
						"enum":        genreNames,
						"description": "Genre must be one of the supported genre names",
					},
					"rating": bson.M{
						"bsonType":    bson.A{"int", "long"},
						"minimum":     1,
						"maximum":     5,
						"description": "Rating must be an integer between 1 and 5",
					},
				},
			},
		},
	}

	if slices.Contains(collectionNameList, collectionName) {

		cmd := bson.D{
			{Key: "collMod", Value: collectionName},
			{Key: "validator", Value: validator},
			{Key: "validationLevel", Value: "strict"},
		}

		option := options.RunCmd()
		result := bookDB.RunCommand(context.TODO(), cmd, option)
		if err := result.Err(); err != nil {
			return err
		}

		return nil
	}

	collectionOption := options.CreateCollection()
	collectionOption.SetValidator(validator)
	collectionOption.SetValidationLevel("strict")

	err = bookDB.CreateCollection(context.TODO(), collectionName, collectionOption)
	if err != nil {
		return err
	}

	return nil
}

func (m BooksModel) initIndexes(conn *mongodb.MongoDBConn) error {

	collectionName := m.GetCollectionName()
	coll := conn.GetDatabase().Collection(collectionName)
	cur, err := coll.Indexes().List(context.TODO())
	if err != nil {
		return err
	}

	var bookIDIndex = "book_id_1"

	var indexes []bson.M
	err = cur.All(context.TODO(), &indexes)
	if err != nil {
		return err
	}

	contains := slices.ContainsFunc(indexes, func(m primitive.M) bool {
		return m["name"] == bookIDIndex
	})

	if !contains {

		indexModelOption := options.Index()
		indexModelOption.SetName(bookIDIndex)
		indexModelOption.SetUnique(true)

		indexModel := mongo.IndexModel{
			Keys: bson.D{
				{Key: itemIDKey, Value: 1},
			},
			Options: indexModelOption,
		}

		option := options.CreateIndexes()
		_, err = coll.Indexes().CreateOne(context.TODO(), indexModel, option)
		if err != nil {
			return err
		}
	}

	return nil
}
