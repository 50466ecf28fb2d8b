package model

import (
	"drivent/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldRoomID = "room_id"
)

const (
	EventCreated = "created"
	EventTraded  = "traded"
)

// Booking is read joined with the booked room.
type Booking struct {
	ID             int       `db:"id"               generated:"true"`
	UserID         int       `db:"user_id"`
	RoomID         int       `db:"room_id"`
	RoomName       string    `db:"room_name"        column:"name"        table:"rooms"`
	RoomCapacity   int       `db:"room_capacity"    column:"capacity"    table:"rooms"`
	RoomHotelID    int       `db:"room_hotel_id"    column:"hotel_id"    table:"rooms"`
	RoomCreatedAt  time.Time `db:"room_created_at"  column:"created_at"  table:"rooms"`
	RoomModifiedAt time.Time `db:"room_modified_at" column:"modified_at" table:"rooms"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = bookings.room_id"
}
