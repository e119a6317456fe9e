package league

import "context"

// Repository describes league and membership persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id string) (League, bool, error)
	List(ctx context.Context) ([]League, error)
	Upsert(ctx context.Context, item League) error
	IsMember(ctx context.Context, userID, leagueID string) (bool, error)
	AddMember(ctx context.Context, leagueID, userID string) error
}
