package model

import "drivent/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID   = "id"
	FieldName = "name"
)

type Hotel struct {
	ID    int    `db:"id"    generated:"true"`
	Name  string `db:"name"`
	Image string `db:"image"`
	model.Metadata
}
