package models

import (
	"context"
	"errors"

	serverError "github.com/kritsada-kn/book-catalog/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseModel implements the keyed persistence operations shared by every
// collection-backed model. ItemIDKey is the BSON key holding the item's
// public identifier.
type BaseModel[T Item] struct {
	Coll      *mongo.Collection
	ItemIDKey string
}

func (m *BaseModel[T]) Inject(coll *mongo.Collection, itemIDKey string) error {

	if itemIDKey == "" {
		return errors.New("item ID key can not be empty")
	}

	m.Coll = coll
	m.ItemIDKey = itemIDKey

	return nil
}

// Save inserts the item, or replaces the stored record holding the same ID.
func (m BaseModel[T]) Save(item T) (T, error) {

	filter := bson.D{{Key: m.ItemIDKey, Value: item.GetID()}}

	option := options.Replace().SetUpsert(true)
	_, err := m.Coll.ReplaceOne(context.TODO(), filter, item, option)
	if err != nil {

		if mongo.IsDuplicateKeyError(err) {
			return item, serverError.DuplicatedObjectIDError.New(item.GetID())
		}

		return item, serverError.StorageUnavailableError.New(err)
	}

	return item, nil
}

func (m BaseModel[T]) GetByID(itemID string) (item T, err error) {

	result := m.Coll.FindOne(context.TODO(), bson.D{{Key: m.ItemIDKey, Value: itemID}})

	err = result.Decode(&item)
	if err != nil {

		if errors.Is(err, mongo.ErrNoDocuments) {
			err = serverError.ObjectIDNotFoundError.New(itemID)
			return
		}

		err = serverError.StorageUnavailableError.New(err)
		return
	}

	return
}

func (m BaseModel[T]) All() ([]T, error) {

	option := options.Find().SetSort(bson.D{{Key: m.ItemIDKey, Value: 1}})
	cur, err := m.Coll.Find(context.TODO(), bson.D{}, option)
	if err != nil {
		return nil, serverError.StorageUnavailableError.New(err)
	}

	var items []T
	if err = cur.All(context.TODO(), &items); err != nil {
		return nil, serverError.StorageUnavailableError.New(err)
	}

	return items, nil
}

func (m BaseModel[T]) ExistsByID(itemID string) (bool, error) {

	filter := bson.D{{Key: m.ItemIDKey, Value: itemID}}

	count, err := m.Coll.CountDocuments(context.TODO(), filter)
	if err != nil {
		return false, serverError.StorageUnavailableError.New(err)
	}

	return count > 0, nil
}

func (m BaseModel[T]) Delete(itemID string) error {

	filter := bson.D{{Key: m.ItemIDKey, Value: itemID}}

	result := m.Coll.FindOneAndDelete(context.TODO(), filter)
	if err := result.Err(); err != nil {

		if errors.Is(err, mongo.ErrNoDocuments) {
			return serverError.ObjectIDNotFoundError.New(itemID)
		}

		return serverError.StorageUnavailableError.New(err)
	}

	return nil
}
