package service_test

import (
	"context"
	"drivent/infras/otel/mocks"
	enrollmentMocks "drivent/internal/domains/enrollment/mocks"
	enrollmentModel "drivent/internal/domains/enrollment/model"
	ticketMocks "drivent/internal/domains/ticket/mocks"
	"drivent/internal/domains/ticket/model"
	"drivent/internal/domains/ticket/service"
	"drivent/shared/failure"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTicketService_Eligibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTicketRepo := ticketMocks.NewMockTicket(ctrl)
	mockEnrollmentRepo := enrollmentMocks.NewMockEnrollment(ctrl)

	svc := service.New(mockTicketRepo, mockEnrollmentRepo, mocks.NewOtel())

	enrollment := enrollmentModel.Enrollment{ID: 10, UserID: 1}
	paid := model.Ticket{ID: 20, EnrollmentID: 10, Status: model.StatusPaid, IncludesHotel: true}

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantErr   error
	}{
		{
			name: "eligible",
			setupMock: func() {
				mockEnrollmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enrollment, nil)
				mockTicketRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(paid, nil)
			},
		},
		{
			name: "no enrollment",
			setupMock: func() {
				mockEnrollmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enrollmentModel.Enrollment{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "no ticket",
			setupMock: func() {
				mockEnrollmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enrollment, nil)
				mockTicketRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Ticket{}, nil)
			},
			wantCode: http.StatusForbidden,
			wantErr:  failure.UnableValidTicket,
		},
		{
			name: "reserved ticket",
			setupMock: func() {
				reserved := paid
				reserved.Status = model.StatusReserved

				mockEnrollmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enrollment, nil)
				mockTicketRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reserved, nil)
			},
			wantCode: http.StatusForbidden,
			wantErr:  failure.UnableValidTicket,
		},
		{
			name: "remote ticket",
			setupMock: func() {
				remote := paid
				remote.IsRemote = true

				mockEnrollmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enrollment, nil)
				mockTicketRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(remote, nil)
			},
			wantCode: http.StatusForbidden,
			wantErr:  failure.UnableValidTicket,
		},
		{
			name: "ticket type without hotel",
			setupMock: func() {
				noHotel := paid
				noHotel.IncludesHotel = false

				mockEnrollmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enrollment, nil)
				mockTicketRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(noHotel, nil)
			},
			wantCode: http.StatusForbidden,
			wantErr:  failure.UnableValidTicket,
		},
		{
			name: "database error",
			setupMock: func() {
				mockEnrollmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enrollmentModel.Enrollment{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Eligibility(context.Background(), 1)
			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
