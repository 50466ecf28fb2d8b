package booking_test

import (
	"context"
	"drivent/infras/otel/mocks"
	"drivent/internal/domains/booking/model/dto"
	serviceMocks "drivent/internal/domains/booking/service/mocks"
	"drivent/internal/handlers/booking"
	"drivent/shared/constant"
	"drivent/shared/failure"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*serviceMocks.MockBooking, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockBooking(ctrl)

	handler := booking.New(mockService, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return mockService, router
}

func newRequest(method, target, body string, userID int) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if userID > 0 {
		req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, userID))
	}

	return req
}

func TestHandler_FindBooking(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		_, router := setup(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodGet, "/booking/", "", 0))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("no booking", func(t *testing.T) {
		mockService, router := setup(t)
		mockService.EXPECT().Find(gomock.Any(), 1).Return(dto.FindBookingResponse{}, failure.NotFound("booking"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodGet, "/booking/", "", 1))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("found", func(t *testing.T) {
		mockService, router := setup(t)
		mockService.EXPECT().Find(gomock.Any(), 1).Return(dto.FindBookingResponse{
			ID:   5,
			Room: dto.RoomResponse{ID: 2, Name: "101", Capacity: 3, HotelID: 1},
		}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodGet, "/booking/", "", 1))

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.EqualValues(t, 5, body["id"])

		room, ok := body["Room"].(map[string]any)
		assert.True(t, ok)
		assert.EqualValues(t, 2, room["id"])
	})
}

func TestHandler_MakeBooking(t *testing.T) {
	t.Run("invalid body", func(t *testing.T) {
		_, router := setup(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodPost, "/booking/", `{}`, 1))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("room without capacity", func(t *testing.T) {
		mockService, router := setup(t)
		mockService.EXPECT().Make(gomock.Any(), 1, dto.MakeBookingRequest{RoomID: 2}).Return(dto.BookingIDResponse{}, failure.RoomWithoutCapacity)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodPost, "/booking/", `{"roomId":2}`, 1))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		mockService, router := setup(t)
		mockService.EXPECT().Make(gomock.Any(), 1, dto.MakeBookingRequest{RoomID: 2}).Return(dto.BookingIDResponse{BookingID: 9}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodPost, "/booking/", `{"roomId":2}`, 1))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"bookingId":9}`, rec.Body.String())
	})
}

func TestHandler_TradeBooking(t *testing.T) {
	t.Run("invalid booking id", func(t *testing.T) {
		_, router := setup(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodPut, "/booking/abc", `{"roomId":2}`, 1))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("user has no booking", func(t *testing.T) {
		mockService, router := setup(t)
		mockService.EXPECT().Trade(gomock.Any(), 1, 4, dto.MakeBookingRequest{RoomID: 2}).Return(dto.BookingIDResponse{}, failure.UserHasNoBooking)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodPut, "/booking/4", `{"roomId":2}`, 1))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		mockService, router := setup(t)
		mockService.EXPECT().Trade(gomock.Any(), 1, 4, dto.MakeBookingRequest{RoomID: 2}).Return(dto.BookingIDResponse{BookingID: 10}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodPut, "/booking/4", `{"roomId":2}`, 1))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"bookingId":10}`, rec.Body.String())
	})
}
