package entity

import "github.com/google/uuid"

type MenuItem struct {
	Base
	BusinessID  uuid.UUID `db:"business_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	Price       float64   `db:"price"`
	Available   bool      `db:"available"`
}
