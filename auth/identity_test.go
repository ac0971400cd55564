package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Role
	}{
		{name: "admin", in: "admin", want: RoleAdmin},
		{name: "user", in: "user", want: RoleUser},
		{name: "unknown degrades to user", in: "superuser", want: RoleUser},
		{name: "empty degrades to user", in: "", want: RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.in))
		})
	}
}

func TestRequire(t *testing.T) {
	admin := &Identity{ID: 1, Username: "ayse", Role: RoleAdmin}
	user := &Identity{ID: 2, Username: "mehmet", Role: RoleUser}

	tests := []struct {
		name     string
		identity *Identity
		allowed  []Role
		wantErr  error
	}{
		{name: "nil identity is not logged in", identity: nil, allowed: []Role{RoleUser}, wantErr: ErrNoSession},
		{name: "admin allowed on admin route", identity: admin, allowed: []Role{RoleAdmin}, wantErr: nil},
		{name: "user denied on admin route", identity: user, allowed: []Role{RoleAdmin}, wantErr: ErrForbidden},
		{name: "user allowed when both roles pass", identity: user, allowed: []Role{RoleAdmin, RoleUser}, wantErr: nil},
		{name: "no allowed roles denies everyone", identity: admin, allowed: nil, wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Require(tt.identity, tt.allowed...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
