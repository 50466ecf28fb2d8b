package model

import "drivent/shared/model"

const (
	TableName  = "tickets"
	EntityName = "ticket"

	TypeTableName = "ticket_types"

	FieldID           = "id"
	FieldEnrollmentID = "enrollment_id"
)

type Status string

const (
	StatusReserved Status = "RESERVED"
	StatusPaid     Status = "PAID"
)

// Ticket is read joined with its ticket type.
type Ticket struct {
	ID            int    `db:"id"                generated:"true"`
	TicketTypeID  int    `db:"ticket_type_id"`
	EnrollmentID  int    `db:"enrollment_id"`
	Status        Status `db:"status"`
	TypeName      string `db:"ticket_type_name"  column:"name"  table:"ticket_types"`
	Price         int    `db:"ticket_type_price" column:"price" table:"ticket_types"`
	IsRemote      bool   `db:"is_remote"         table:"ticket_types"`
	IncludesHotel bool   `db:"includes_hotel"    table:"ticket_types"`
	model.Metadata
}

func (Ticket) GetJoinQuery() string {
	return "JOIN ticket_types ON ticket_types.id = tickets.ticket_type_id"
}

// AllowsHotel reports whether the ticket entitles its holder to a hotel room.
func (t Ticket) AllowsHotel() bool {
	return t.Status == StatusPaid && !t.IsRemote && t.IncludesHotel
}
