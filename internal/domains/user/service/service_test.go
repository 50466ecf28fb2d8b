package service_test

import (
	"context"
	"drivent/infras/otel/mocks"
	userMocks "drivent/internal/domains/user/mocks"
	"drivent/internal/domains/user/model"
	"drivent/internal/domains/user/service"
	"drivent/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUserService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: 3, Email: "me@drivent.com", Role: "user"}, nil)

	res, err := svc.Me(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, "me@drivent.com", res.Email)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

	_, err = svc.Me(context.Background(), 4)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
