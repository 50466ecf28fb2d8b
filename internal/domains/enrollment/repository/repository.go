package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"drivent/infras/otel"
	"drivent/infras/postgres"
	"drivent/internal/domains/enrollment/model"
	gDto "drivent/shared/dto"
	gRepo "drivent/shared/repository"
)

type Enrollment interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Enrollment, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Enrollment]
}

func New(db *postgres.Connection, otel otel.Otel) Enrollment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Enrollment](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
