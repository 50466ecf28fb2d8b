package permissions_test

import (
	"drivent/permissions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	perms := permissions.Get()
	assert.NotNil(t, perms)

	assert.True(t, perms.FindPermissions("/v1/auth/login", http.MethodPost).Skip)

	trade := perms.FindPermissions("/v1/booking/{bookingId}", http.MethodPut)
	assert.False(t, trade.Skip)
	assert.Contains(t, trade.Permissions, "user")
}

func TestFindPermissions_Unknown(t *testing.T) {
	perms := &permissions.PermissionData{}

	assert.Equal(t, permissions.Permission{}, perms.FindPermissions("/v1/unknown", http.MethodGet))
}

func TestPermission_Allows(t *testing.T) {
	open := permissions.Permission{}
	assert.True(t, open.Allows("user"))

	adminOnly := permissions.Permission{Permissions: []string{"admin"}}
	assert.True(t, adminOnly.Allows("admin"))
	assert.False(t, adminOnly.Allows("user"))
}

func TestFindPermissions_MethodCase(t *testing.T) {
	perms := &permissions.PermissionData{
		Endpoints: []permissions.Permission{{Path: "/v1/booking", Method: "get", Permissions: []string{"user"}}},
	}

	assert.Equal(t, []string{"user"}, perms.FindPermissions("/v1/booking", http.MethodGet).Permissions)
}
