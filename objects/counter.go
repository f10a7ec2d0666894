package objects

// SequenceCounter is the persisted state of a named monotonic counter.
type SequenceCounter struct {
	Name  string `json:"name" bson:"_id"`
	Value int64  `json:"value" bson:"value"`
}
