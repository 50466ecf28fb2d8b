package failure_test

import (
	"drivent/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("bad body")), code: http.StatusBadRequest, msg: "bad body"},
		{name: "bad request string", err: failure.BadRequestFromString("roomId is required"), code: http.StatusBadRequest, msg: "roomId is required"},
		{name: "unauthorized", err: failure.Unauthorized("Invalid token"), code: http.StatusUnauthorized, msg: "Invalid token"},
		{name: "not found", err: failure.NotFound("room not found"), code: http.StatusNotFound, msg: "room not found"},
		{name: "conflict", err: failure.Conflict("booking already exists"), code: http.StatusConflict, msg: "booking already exists"},
		{name: "forbidden", err: failure.Forbidden("nope"), code: http.StatusForbidden, msg: "nope"},
		{name: "no capacity", err: failure.RoomWithoutCapacity, code: http.StatusForbidden, msg: "Room without capacity"},
		{name: "invalid ticket", err: failure.UnableValidTicket, code: http.StatusForbidden, msg: "Unable to identify a valid ticket"},
		{name: "no booking", err: failure.UserHasNoBooking, code: http.StatusForbidden, msg: "User has no booking in the name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestNilErrors(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("make booking: %w", failure.RoomWithoutCapacity)

	assert.Equal(t, http.StatusForbidden, failure.GetCode(wrapped))
	assert.ErrorIs(t, wrapped, failure.RoomWithoutCapacity)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
}
