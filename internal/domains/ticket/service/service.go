package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"drivent/infras/otel"
	enrollmentModel "drivent/internal/domains/enrollment/model"
	enrollmentRepo "drivent/internal/domains/enrollment/repository"
	"drivent/internal/domains/ticket/model"
	"drivent/internal/domains/ticket/repository"
	"drivent/shared"
	"drivent/shared/constant"
	"drivent/shared/failure"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Ticket interface {
	// Eligibility returns nil when the user holds a ticket that grants a hotel room.
	// A missing enrollment is NotFound; any other shortfall is UnableValidTicket.
	Eligibility(ctx context.Context, userID int) error
}

type serviceImpl struct {
	repo           repository.Ticket
	enrollmentRepo enrollmentRepo.Enrollment
	otel           otel.Otel
}

func New(repo repository.Ticket, enrollmentRepo enrollmentRepo.Enrollment, otel otel.Otel) Ticket {
	return &serviceImpl{
		repo:           repo,
		enrollmentRepo: enrollmentRepo,
		otel:           otel,
	}
}

func (s *serviceImpl) Eligibility(ctx context.Context, userID int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Eligibility")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	enrollment, err := s.enrollmentRepo.Get(ctx, shared.FilterByID(userID, enrollmentModel.FieldUserID, enrollmentModel.TableName))
	if err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("failed to get enrollment")

		return fmt.Errorf("failed to get enrollment: %w", err)
	}

	if enrollment.ID == 0 {
		return failure.NotFound("enrollment not found") // nolint:wrapcheck
	}

	ticket, err := s.repo.Get(ctx, shared.FilterByID(enrollment.ID, model.FieldEnrollmentID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int("enrollment_id", enrollment.ID).Msg("failed to get ticket")

		return fmt.Errorf("failed to get ticket: %w", err)
	}

	if ticket.ID == 0 || !ticket.AllowsHotel() {
		log.Debug().
			Int("user_id", userID).
			Int("ticket_id", ticket.ID).
			Str("status", string(ticket.Status)).
			Msg("ticket does not grant a hotel room")

		return failure.UnableValidTicket
	}

	return nil
}
