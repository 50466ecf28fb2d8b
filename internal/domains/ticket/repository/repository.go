package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"drivent/infras/otel"
	"drivent/infras/postgres"
	"drivent/internal/domains/ticket/model"
	gDto "drivent/shared/dto"
	gRepo "drivent/shared/repository"
)

type Ticket interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Ticket, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Ticket]
}

func New(db *postgres.Connection, otel otel.Otel) Ticket {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Ticket](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
