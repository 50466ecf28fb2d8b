package model

import (
	"drivent/shared/model"
	"time"
)

const (
	TableName  = "enrollments"
	EntityName = "enrollment"

	FieldID     = "id"
	FieldUserID = "user_id"
)

type Enrollment struct {
	ID       int       `db:"id"       generated:"true"`
	UserID   int       `db:"user_id"`
	Name     string    `db:"name"`
	CPF      string    `db:"cpf"`
	Birthday time.Time `db:"birthday"`
	Phone    string    `db:"phone"`
	model.Metadata
}
