// Package counters issues strictly increasing values from named counters
// persisted in the "counters" collection. Each counter document holds the
// last issued value and is created lazily at 0 on first use.
package counters

import (
	"context"

	serverError "github.com/kritsada-kn/book-catalog/errors"
	"github.com/kritsada-kn/book-catalog/mongodb"
	"github.com/kritsada-kn/book-catalog/objects"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CountersModel struct {
	coll *mongo.Collection
}

func NewCountersModel(conn *mongodb.MongoDBConn) (*CountersModel, error) {

	countersModel := CountersModel{
		coll: conn.GetCollection(countersModelCollectionName),
	}

	return &countersModel, nil
}

const countersModelCollectionName = "counters"

func (m CountersModel) GetCollectionName() string {
	return countersModelCollectionName
}

// Next increments the named counter by one and returns the new value.
// The increment and read happen in a single FindOneAndUpdate, so concurrent
// callers always observe distinct values. The first call for a name
// returns 1.
func (m CountersModel) Next(name string) (int64, error) {

	if name == "" {
		return 0, serverError.CounterNameInvalidError.New()
	}

	filter := bson.D{{Key: "_id", Value: name}}
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "value", Value: int64(1)}}}}

	option := options.FindOneAndUpdate()
	option.SetUpsert(true)
	option.SetReturnDocument(options.After)

	result := m.coll.FindOneAndUpdate(context.TODO(), filter, update, option)

	var counter objects.SequenceCounter
	if err := result.Decode(&counter); err != nil {
		return 0, serverError.StorageUnavailableError.New(err)
	}

	return counter.Value, nil
}
