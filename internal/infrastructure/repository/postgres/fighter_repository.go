package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fightpicks/fight-league/internal/domain/fighter"
	qb "github.com/fightpicks/fight-league/internal/platform/querybuilder"
)

const fighterTable = "fighters"

const upsertFighterSuffix = `
ON CONFLICT (public_id) DO UPDATE SET
	name = EXCLUDED.name,
	weight_class = EXCLUDED.weight_class,
	card_position = EXCLUDED.card_position,
	ranking = EXCLUDED.ranking,
	is_champion = EXCLUDED.is_champion,
	is_favorite = EXCLUDED.is_favorite,
	price = EXCLUDED.price,
	active = EXCLUDED.active,
	updated_at = NOW()`

type FighterRepository struct {
	db *sqlx.DB
}

func NewFighterRepository(db *sqlx.DB) *FighterRepository {
	return &FighterRepository{db: db}
}

func (r *FighterRepository) GetByID(ctx context.Context, id string) (fighter.Fighter, bool, error) {
	query, args, err := qb.Select("*").From(fighterTable).Where(qb.Eq("public_id", id)).ToSQL()
	if err != nil {
		return fighter.Fighter{}, false, fmt.Errorf("build fighter query: %w", err)
	}

	var row fighterTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fighter.Fighter{}, false, nil
		}
		return fighter.Fighter{}, false, fmt.Errorf("get fighter: %w", err)
	}

	return fighterToDomain(row), true, nil
}

func (r *FighterRepository) ListByIDs(ctx context.Context, ids []string) ([]fighter.Fighter, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	query, args, err := qb.Select("*").From(fighterTable).Where(qb.In("public_id", values)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build fighter list query: %w", err)
	}

	var rows []fighterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fighters by ids: %w", err)
	}

	return fightersToDomain(rows), nil
}

func (r *FighterRepository) List(ctx context.Context) ([]fighter.Fighter, error) {
	query, args, err := qb.Select("*").From(fighterTable).OrderBy("name ASC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build fighter list query: %w", err)
	}

	var rows []fighterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fighters: %w", err)
	}

	return fightersToDomain(rows), nil
}

func (r *FighterRepository) Upsert(ctx context.Context, item fighter.Fighter) error {
	model := fighterInsertModel{
		PublicID:     item.ID,
		Name:         item.Name,
		WeightClass:  item.WeightClass,
		CardPosition: string(item.CardPosition),
		Ranking:      item.Ranking,
		IsChampion:   item.IsChampion,
		IsFavorite:   item.IsFavorite,
		Price:        item.Price,
		Active:       item.Active,
	}

	query, args, err := qb.InsertModel(fighterTable, model, upsertFighterSuffix)
	if err != nil {
		return fmt.Errorf("build fighter upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert fighter: %w", err)
	}

	return nil
}

func fightersToDomain(rows []fighterTableModel) []fighter.Fighter {
	if len(rows) == 0 {
		return nil
	}
	out := make([]fighter.Fighter, 0, len(rows))
	for _, row := range rows {
		out = append(out, fighterToDomain(row))
	}
	return out
}
