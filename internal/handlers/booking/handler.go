package booking

import (
	"drivent/infras/otel"
	"drivent/internal/domains/booking/model/dto"
	"drivent/internal/domains/booking/service"
	"drivent/shared"
	"drivent/shared/constant"
	"drivent/shared/failure"
	"drivent/shared/validator"
	"drivent/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.FindBooking)
		routerGroup.Post("/", handler.MakeBooking)
		routerGroup.Put("/{"+constant.RequestParamBookingID+"}", handler.TradeBooking)
	})
}

// FindBooking returns the booking of the authenticated user.
// @Summary Get my booking
// @Description Retrieve the booking held by the authenticated user together with its room.
// @Tags Booking
// @Produce json
// @Success 200 {object} dto.FindBookingResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking [get]
// @Security BearerAuth
func (handler *Handler) FindBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FindBooking")
	defer scope.End()

	userID, err := shared.UserIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Find(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("user_id", userID).Msg("failed to find booking")

		response.WithError(writer, err)

		return
	}

	response.WithPayload(writer, http.StatusOK, res)
}

// MakeBooking books a room for the authenticated user.
// @Summary Book a room
// @Description Book a room. Requires an enrollment and a paid in-person ticket that includes hotel.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.MakeBookingRequest true "Make Booking Request"
// @Success 200 {object} dto.BookingIDResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking [post]
// @Security BearerAuth
func (handler *Handler) MakeBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MakeBooking")
	defer scope.End()

	userID, err := shared.UserIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.MakeBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Make(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("user_id", userID).Int("room_id", req.RoomID).Msg("failed to make booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + strconv.Itoa(res.BookingID) + " made by user " + strconv.Itoa(userID))

	response.WithPayload(writer, http.StatusOK, res)
}

// TradeBooking moves the authenticated user's booking to another room.
// @Summary Trade booking room
// @Description Replace the user's booking with a booking for another room.
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingId path int true "Booking ID"
// @Param request body dto.MakeBookingRequest true "Trade Booking Request"
// @Success 200 {object} dto.BookingIDResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/{bookingId} [put]
// @Security BearerAuth
func (handler *Handler) TradeBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TradeBooking")
	defer scope.End()

	userID, err := shared.UserIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	bookingID, err := shared.ConvertStringToInt(chi.URLParam(request, constant.RequestParamBookingID))
	if err != nil || bookingID <= 0 {
		err = failure.BadRequestFromString("invalid booking id")

		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.MakeBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Trade(ctx, userID, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("user_id", userID).Int("booking_id", bookingID).Msg("failed to trade booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + strconv.Itoa(bookingID) + " traded for " + strconv.Itoa(res.BookingID))

	response.WithPayload(writer, http.StatusOK, res)
}
