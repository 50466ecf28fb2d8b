package hotel_test

import (
	"context"
	"drivent/infras/otel/mocks"
	"drivent/internal/domains/hotel/model/dto"
	serviceMocks "drivent/internal/domains/hotel/service/mocks"
	"drivent/internal/handlers/hotel"
	"drivent/shared/constant"
	gDto "drivent/shared/dto"
	"drivent/shared/failure"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*serviceMocks.MockHotel, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockHotel(ctrl)

	handler := hotel.New(mockService, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return mockService, router
}

func authenticated(req *http.Request) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, 1))
}

func TestHandler_GetHotels(t *testing.T) {
	t.Run("ineligible ticket", func(t *testing.T) {
		mockService, router := setup(t)
		mockService.EXPECT().GetAll(gomock.Any(), 1, gomock.Any()).Return(nil, failure.UnableValidTicket)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authenticated(httptest.NewRequest(http.MethodGet, "/hotels/", nil)))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("default pagination", func(t *testing.T) {
		mockService, router := setup(t)
		mockService.EXPECT().
			GetAll(gomock.Any(), 1, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, params gDto.QueryParams) ([]dto.HotelResponse, error) {
				assert.Equal(t, constant.DefaultValuePage, params.Page)
				assert.Equal(t, constant.DefaultValueLimit, params.Limit)

				return []dto.HotelResponse{{ID: 1, Name: "Driven Resort"}}, nil
			})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authenticated(httptest.NewRequest(http.MethodGet, "/hotels/", nil)))

		assert.Equal(t, http.StatusOK, rec.Code)

		var body []map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body, 1)
		assert.Equal(t, "Driven Resort", body[0]["name"])
	})
}

func TestHandler_GetHotelByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		_, router := setup(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authenticated(httptest.NewRequest(http.MethodGet, "/hotels/x", nil)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockService, router := setup(t)
		mockService.EXPECT().Get(gomock.Any(), 1, 3).Return(dto.HotelWithRoomsResponse{}, failure.NotFound("hotel"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authenticated(httptest.NewRequest(http.MethodGet, "/hotels/3", nil)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("with rooms", func(t *testing.T) {
		mockService, router := setup(t)
		res := dto.HotelWithRoomsResponse{}
		res.ID = 3
		res.Name = "Driven Palace"
		mockService.EXPECT().Get(gomock.Any(), 1, 3).Return(res, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authenticated(httptest.NewRequest(http.MethodGet, "/hotels/3", nil)))

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.EqualValues(t, 3, body["id"])
		assert.Contains(t, body, "Rooms")
	})
}
