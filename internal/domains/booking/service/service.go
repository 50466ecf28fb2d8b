package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"drivent/config"
	"drivent/infras/kafka"
	"drivent/infras/otel"
	"drivent/infras/postgres"
	"drivent/internal/domains/booking/model"
	"drivent/internal/domains/booking/model/dto"
	"drivent/internal/domains/booking/repository"
	roomModel "drivent/internal/domains/room/model"
	roomRepo "drivent/internal/domains/room/repository"
	ticketService "drivent/internal/domains/ticket/service"
	"drivent/shared"
	"drivent/shared/constant"
	gDto "drivent/shared/dto"
	"drivent/shared/failure"
	gRepo "drivent/shared/repository"
	"drivent/shared/timezone"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Find(ctx context.Context, userID int) (dto.FindBookingResponse, error)
	Make(ctx context.Context, userID int, req dto.MakeBookingRequest) (dto.BookingIDResponse, error)
	Trade(ctx context.Context, userID, bookingID int, req dto.MakeBookingRequest) (dto.BookingIDResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	roomRepo   roomRepo.Room
	ticket     ticketService.Ticket
	transactor postgres.Transactor
	kafka      kafka.Client
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	ticket ticketService.Ticket,
	transactor postgres.Transactor,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		ticket:     ticket,
		transactor: transactor,
		kafka:      kafka,
		cfg:        cfg,
		otel:       otel,
	}
}

func byUser(userID int) gDto.FilterGroup {
	return shared.FilterByID(userID, model.FieldUserID, model.TableName)
}

func (s *serviceImpl) Find(ctx context.Context, userID int) (res dto.FindBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Find")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, byUser(userID))
	if err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Make(ctx context.Context, userID int, req dto.MakeBookingRequest) (res dto.BookingIDResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Make")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("room_id", req.RoomID)

	if err = s.ticket.Eligibility(ctx, userID); err != nil {
		return res, err // nolint:wrapcheck
	}

	var previousID int

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetForUpdateTx(ctx, tx, byUser(userID))
		if err != nil {
			log.Error().Err(err).Int("user_id", userID).Msg("failed to get current booking")

			return fmt.Errorf("failed to get current booking: %w", err)
		}

		previousID = current.ID

		res.BookingID, err = s.book(ctx, tx, req.ToModel(userID), current)

		return err
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	eventType := model.EventCreated
	if previousID != 0 {
		eventType = model.EventTraded
	}

	s.publish(ctx, dto.BookingEvent{
		Type:              eventType,
		BookingID:         res.BookingID,
		PreviousBookingID: previousID,
		UserID:            userID,
		RoomID:            req.RoomID,
		OccurredAt:        timezone.Now(),
	})

	return res, nil
}

func (s *serviceImpl) Trade(ctx context.Context, userID, bookingID int, req dto.MakeBookingRequest) (res dto.BookingIDResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Trade")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("room_id", req.RoomID)
	scope.SetAttribute("booking_id", bookingID)

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetForUpdateTx(ctx, tx, byUser(userID))
		if err != nil {
			log.Error().Err(err).Int("user_id", userID).Msg("failed to get current booking")

			return fmt.Errorf("failed to get current booking: %w", err)
		}

		if current.ID == 0 || current.ID != bookingID {
			return failure.UserHasNoBooking
		}

		res.BookingID, err = s.book(ctx, tx, req.ToModel(userID), current)

		return err
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	s.publish(ctx, dto.BookingEvent{
		Type:              model.EventTraded,
		BookingID:         res.BookingID,
		PreviousBookingID: bookingID,
		UserID:            userID,
		RoomID:            req.RoomID,
		OccurredAt:        timezone.Now(),
	})

	return res, nil
}

// book locks the target room, drops the user's current booking if any and
// inserts booking when the room still has a free slot.
func (s *serviceImpl) book(ctx context.Context, tx *sqlx.Tx, booking model.Booking, current model.Booking) (int, error) {
	room, err := s.roomRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Int("room_id", booking.RoomID).Msg("failed to get room")

		return 0, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return 0, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if current.ID != 0 {
		if err = s.repo.DeleteTx(ctx, tx, shared.FilterByID(current.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Int("booking_id", current.ID).Msg("failed to delete booking")

			return 0, fmt.Errorf("failed to delete booking: %w", err)
		}
	}

	booked, err := s.repo.CountTx(ctx, tx, shared.FilterByID(room.ID, model.FieldRoomID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int("room_id", room.ID).Msg("failed to count room bookings")

		return 0, fmt.Errorf("failed to count room bookings: %w", err)
	}

	if room.Capacity <= 0 || booked >= room.Capacity {
		return 0, failure.RoomWithoutCapacity
	}

	id, err := s.repo.InsertTx(ctx, tx, booking)
	if gRepo.IsUniqueViolation(err) {
		return 0, failure.Conflict("user already has a booking") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Int("room_id", room.ID).Msg("failed to create booking")

		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	return id, nil
}

// publish sends event to the booking topic without blocking the request.
func (s *serviceImpl) publish(ctx context.Context, event dto.BookingEvent) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: strconv.Itoa(event.UserID), Value: event}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.Booking, message); err != nil {
			log.Error().Err(err).Str("event", event.Type).Int("booking_id", event.BookingID).Msg("failed to publish booking event")
		}
	}()
}
