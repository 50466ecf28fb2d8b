package model_test

import (
	"drivent/internal/domains/ticket/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicket_AllowsHotel(t *testing.T) {
	tests := []struct {
		name   string
		ticket model.Ticket
		want   bool
	}{
		{"paid with hotel", model.Ticket{Status: model.StatusPaid, IncludesHotel: true}, true},
		{"reserved", model.Ticket{Status: model.StatusReserved, IncludesHotel: true}, false},
		{"remote", model.Ticket{Status: model.StatusPaid, IsRemote: true, IncludesHotel: true}, false},
		{"without hotel", model.Ticket{Status: model.StatusPaid}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ticket.AllowsHotel())
		})
	}
}
