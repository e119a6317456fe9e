package fighter

import "context"

// Repository describes fighter catalog persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id string) (Fighter, bool, error)
	ListByIDs(ctx context.Context, ids []string) ([]Fighter, error)
	List(ctx context.Context) ([]Fighter, error)
	Upsert(ctx context.Context, item Fighter) error
}
