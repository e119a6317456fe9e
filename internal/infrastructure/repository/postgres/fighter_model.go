package postgres

import (
	"time"

	"github.com/fightpicks/fight-league/internal/domain/fighter"
)

type fighterTableModel struct {
	PublicID     string    `db:"public_id"`
	Name         string    `db:"name"`
	WeightClass  string    `db:"weight_class"`
	CardPosition string    `db:"card_position"`
	Ranking      int       `db:"ranking"`
	IsChampion   bool      `db:"is_champion"`
	IsFavorite   bool      `db:"is_favorite"`
	Price        int64     `db:"price"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type fighterInsertModel struct {
	PublicID     string `db:"public_id"`
	Name         string `db:"name"`
	WeightClass  string `db:"weight_class"`
	CardPosition string `db:"card_position"`
	Ranking      int    `db:"ranking"`
	IsChampion   bool   `db:"is_champion"`
	IsFavorite   bool   `db:"is_favorite"`
	Price        int64  `db:"price"`
	Active       bool   `db:"active"`
}

func fighterToDomain(row fighterTableModel) fighter.Fighter {
	return fighter.Fighter{
		ID:           row.PublicID,
		Name:         row.Name,
		WeightClass:  row.WeightClass,
		CardPosition: fighter.CardPosition(row.CardPosition),
		Ranking:      row.Ranking,
		IsChampion:   row.IsChampion,
		IsFavorite:   row.IsFavorite,
		Price:        row.Price,
		Active:       row.Active,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
