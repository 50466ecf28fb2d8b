package dto_test

import (
	"drivent/internal/domains/hotel/model"
	"drivent/internal/domains/hotel/model/dto"
	roomModel "drivent/internal/domains/room/model"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromModels(t *testing.T) {
	res := dto.FromModels([]model.Hotel{{ID: 1, Name: "Driven Resort"}, {ID: 2, Name: "Driven Palace"}})

	assert.Len(t, res, 2)
	assert.Equal(t, "Driven Palace", res[1].Name)
}

func TestHotelWithRoomsResponse_FromModel(t *testing.T) {
	var res dto.HotelWithRoomsResponse
	res.FromModel(model.Hotel{ID: 1, Name: "Driven Resort", Image: "resort.png"}, []roomModel.Room{
		{ID: 10, Name: "101", Capacity: 2, HotelID: 1},
	})

	assert.Equal(t, 1, res.ID)
	assert.Len(t, res.Rooms, 1)
	assert.Equal(t, 2, res.Rooms[0].Capacity)

	payload, err := json.Marshal(res)
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "Driven Resort", decoded["name"])
	assert.Contains(t, decoded, "Rooms")
}
