package model

import "arena/shared/model"

const (
	TableName  = "strutture"
	EntityName = "struttura"

	FieldID      = "id"
	FieldName    = "name"
	FieldAddress = "address"
	FieldCity    = "city"
	FieldOwnerID = "owner_id"
	FieldImage   = "image"
	FieldActive  = "active"
)

type Struttura struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Address string `db:"address"`
	City    string `db:"city"`
	OwnerID string `db:"owner_id"`
	Image   string `db:"image"`
	Active  bool   `db:"active"`
	model.Metadata
}
