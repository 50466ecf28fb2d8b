package dto

import (
	bookingDto "drivent/internal/domains/booking/model/dto"
	"drivent/internal/domains/hotel/model"
	roomModel "drivent/internal/domains/room/model"
	gDto "drivent/shared/dto"
)

type HotelResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(hotel model.Hotel) {
	r.ID = hotel.ID
	r.Name = hotel.Name
	r.Image = hotel.Image
	r.Metadata.FromModel(hotel.Metadata)
}

func FromModels(hotels []model.Hotel) []HotelResponse {
	res := make([]HotelResponse, len(hotels))
	for i, hotel := range hotels {
		res[i].FromModel(hotel)
	}

	return res
}

type HotelWithRoomsResponse struct {
	HotelResponse
	Rooms []bookingDto.RoomResponse `json:"Rooms"`
}

func (r *HotelWithRoomsResponse) FromModel(hotel model.Hotel, rooms []roomModel.Room) {
	r.HotelResponse.FromModel(hotel)

	r.Rooms = make([]bookingDto.RoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
	}
}
