package dto

import (
	"drivent/internal/domains/booking/model"
	roomModel "drivent/internal/domains/room/model"
	gDto "drivent/shared/dto"
	gModel "drivent/shared/model"
	"drivent/shared/timezone"
	"time"
)

type MakeBookingRequest struct {
	RoomID int `json:"roomId" validate:"required,gt=0"`
}

func (r *MakeBookingRequest) ToModel(userID int) model.Booking {
	now := timezone.Now()

	return model.Booking{
		UserID: userID,
		RoomID: r.RoomID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

type BookingIDResponse struct {
	BookingID int `json:"bookingId"`
}

type RoomResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	HotelID  int    `json:"hotelId"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(room roomModel.Room) {
	r.ID = room.ID
	r.Name = room.Name
	r.Capacity = room.Capacity
	r.HotelID = room.HotelID
	r.Metadata.FromModel(room.Metadata)
}

type FindBookingResponse struct {
	ID   int          `json:"id"`
	Room RoomResponse `json:"Room"`
}

func (r *FindBookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.Room.FromModel(roomModel.Room{
		ID:       booking.RoomID,
		Name:     booking.RoomName,
		Capacity: booking.RoomCapacity,
		HotelID:  booking.RoomHotelID,
		Metadata: gModel.Metadata{
			CreatedAt:  booking.RoomCreatedAt,
			ModifiedAt: booking.RoomModifiedAt,
		},
	})
}

// BookingEvent is published after a booking is created or traded.
type BookingEvent struct {
	Type              string    `json:"type"`
	BookingID         int       `json:"bookingId"`
	PreviousBookingID int       `json:"previousBookingId,omitempty"`
	UserID            int       `json:"userId"`
	RoomID            int       `json:"roomId"`
	OccurredAt        time.Time `json:"occurredAt"`
}
