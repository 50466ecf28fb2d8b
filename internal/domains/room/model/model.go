package model

import "drivent/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldName     = "name"
	FieldCapacity = "capacity"
	FieldHotelID  = "hotel_id"
)

type Room struct {
	ID       int    `db:"id"       generated:"true"`
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
	HotelID  int    `db:"hotel_id"`
	model.Metadata
}
