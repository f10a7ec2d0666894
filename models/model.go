package models

type Item interface {
	GetID() string
}

type Model[T Item] interface {
	GetCollectionName() string
	Save(item T) (T, error)
	GetByID(itemID string) (T, error)
	All() ([]T, error)
	ExistsByID(itemID string) (bool, error)
	Delete(itemID string) error
}
