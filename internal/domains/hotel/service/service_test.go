package service_test

import (
	"context"
	"drivent/config"
	"drivent/infras/otel/mocks"
	hotelMocks "drivent/internal/domains/hotel/mocks"
	"drivent/internal/domains/hotel/model"
	"drivent/internal/domains/hotel/model/dto"
	"drivent/internal/domains/hotel/service"
	roomMocks "drivent/internal/domains/room/mocks"
	roomModel "drivent/internal/domains/room/model"
	ticketMocks "drivent/internal/domains/ticket/service/mocks"
	"drivent/shared/cache"
	cacheMocks "drivent/shared/cache/mocks"
	gDto "drivent/shared/dto"
	"drivent/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHotelService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockTicket := ticketMocks.NewMockTicket(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockHotelRepo, mockRoomRepo, mockTicket, &config.Config{}, mockCache, mocks.NewOtel())
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("ineligible", func(t *testing.T) {
		mockTicket.EXPECT().Eligibility(gomock.Any(), 1).Return(failure.UnableValidTicket)

		_, err := svc.GetAll(context.Background(), 1, params)
		assert.ErrorIs(t, err, failure.UnableValidTicket)
	})

	t.Run("cache hit", func(t *testing.T) {
		mockTicket.EXPECT().Eligibility(gomock.Any(), 1).Return(nil)
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, _ := value.(*[]dto.HotelResponse)
				*res = []dto.HotelResponse{{ID: 3}}

				return nil
			})

		res, err := svc.GetAll(context.Background(), 1, params)
		assert.NoError(t, err)
		assert.Equal(t, 3, res[0].ID)
	})

	t.Run("no hotels", func(t *testing.T) {
		mockTicket.EXPECT().Eligibility(gomock.Any(), 1).Return(nil)
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockHotelRepo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Hotel{}, nil)

		_, err := svc.GetAll(context.Background(), 1, params)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("hotels", func(t *testing.T) {
		mockTicket.EXPECT().Eligibility(gomock.Any(), 1).Return(nil)
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockHotelRepo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Hotel{{ID: 1, Name: "Driven Resort"}}, nil)

		res, err := svc.GetAll(context.Background(), 1, params)
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Driven Resort", res[0].Name)
	})
}

func TestHotelService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockTicket := ticketMocks.NewMockTicket(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockHotelRepo, mockRoomRepo, mockTicket, &config.Config{}, mockCache, mocks.NewOtel())
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	t.Run("no enrollment", func(t *testing.T) {
		mockTicket.EXPECT().Eligibility(gomock.Any(), 1).Return(failure.NotFound("enrollment not found"))

		_, err := svc.Get(context.Background(), 1, 5)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("hotel not found", func(t *testing.T) {
		mockTicket.EXPECT().Eligibility(gomock.Any(), 1).Return(nil)
		mockCache.EXPECT().Get(gomock.Any(), "hotel:get:5", gomock.Any()).Return(cache.Nil)
		mockHotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)

		_, err := svc.Get(context.Background(), 1, 5)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("hotel with rooms", func(t *testing.T) {
		mockTicket.EXPECT().Eligibility(gomock.Any(), 1).Return(nil)
		mockCache.EXPECT().Get(gomock.Any(), "hotel:get:5", gomock.Any()).Return(cache.Nil)
		mockHotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: 5, Name: "Driven Palace"}, nil)
		mockRoomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]roomModel.Room{{ID: 1, HotelID: 5, Capacity: 2}, {ID: 2, HotelID: 5, Capacity: 3}}, nil)

		res, err := svc.Get(context.Background(), 1, 5)
		assert.NoError(t, err)
		assert.Equal(t, 5, res.ID)
		assert.Len(t, res.Rooms, 2)
	})
}
