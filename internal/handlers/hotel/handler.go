package hotel

import (
	"drivent/infras/otel"
	"drivent/internal/domains/hotel/service"
	"drivent/shared"
	"drivent/shared/constant"
	gDto "drivent/shared/dto"
	"drivent/shared/failure"
	"drivent/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHotels)
		routerGroup.Get("/{"+constant.RequestParamHotelID+"}", handler.GetHotelByID)
	})
}

// GetHotels lists the hotels available to the authenticated user.
// @Summary List hotels
// @Description List hotels. Requires an enrollment and a paid in-person ticket that includes hotel.
// @Tags Hotel
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {array} dto.HotelResponse
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [get]
// @Security BearerAuth
func (handler *Handler) GetHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	userID, err := shared.UserIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, userID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("user_id", userID).Msg("failed to get hotels")

		response.WithError(w, err)

		return
	}

	response.WithPayload(w, http.StatusOK, res)
}

// GetHotelByID returns a hotel with its rooms.
// @Summary Get hotel with rooms
// @Tags Hotel
// @Produce json
// @Param hotelId path int true "Hotel ID"
// @Success 200 {object} dto.HotelWithRoomsResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelId} [get]
// @Security BearerAuth
func (handler *Handler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelByID")
	defer scope.End()

	userID, err := shared.UserIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	hotelID, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamHotelID))
	if err != nil || hotelID <= 0 {
		err = failure.BadRequestFromString("invalid hotel id")

		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, userID, hotelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("hotel_id", hotelID).Msg("failed to get hotel")

		response.WithError(w, err)

		return
	}

	response.WithPayload(w, http.StatusOK, res)
}
