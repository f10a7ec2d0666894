package errors

const (
	ObjectIDNotFoundErrorCode    = 200_001
	DuplicatedObjectIDErrorCode  = 200_002
	BookInvalidErrorCode         = 200_003
	CounterNameInvalidErrorCode  = 200_004
	StorageUnavailableErrorCode  = 300_001
	UpstreamUnavailableErrorCode = 300_002
)

// ObjectIDNotFoundError indicates the requested item ID does not exist
var ObjectIDNotFoundError = new(ObjectIDNotFoundErrorCode, "ObjectIDNotFound", "Book with ID %s does not exist")

// DuplicatedObjectIDError indicates an insert reused an item ID that is already taken
var DuplicatedObjectIDError = new(DuplicatedObjectIDErrorCode, "DuplicatedObjectID", "Book ID %s is already used")

// BookInvalidError indicates the given book violates one or more field constraints
var BookInvalidError = new(BookInvalidErrorCode, "BookInvalid", "Book validation failed")

// CounterNameInvalidError indicates a sequence was requested with an empty counter name
var CounterNameInvalidError = new(CounterNameInvalidErrorCode, "CounterNameInvalid", "Counter name can not be empty")

// StorageUnavailableError indicates the document store could not serve the operation
var StorageUnavailableError = new(StorageUnavailableErrorCode, "StorageUnavailable", "Storage operation failed: %s")

// UpstreamUnavailableError indicates the external metadata provider call failed
var UpstreamUnavailableError = new(UpstreamUnavailableErrorCode, "UpstreamUnavailable", "External metadata lookup failed: %s")
