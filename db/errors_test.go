package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "todos_musteri_id_fkey"}
	otherPgErr := &pgconn.PgError{Code: "42P01"}
	plainErr := errors.New("connection refused")

	tests := []struct {
		name    string
		in      error
		wantIs  error
		wantRaw error
	}{
		{name: "nil passes through", in: nil, wantRaw: nil},
		{name: "unique violation", in: uniqueErr, wantIs: ErrDuplicate},
		{name: "foreign key violation", in: fkErr, wantIs: ErrReferenced},
		{name: "wrapped unique violation", in: fmt.Errorf("create user: %w", uniqueErr), wantIs: ErrDuplicate},
		{name: "wrapped foreign key violation", in: fmt.Errorf("delete customer: %w", fkErr), wantIs: ErrReferenced},
		{name: "other postgres error passes through", in: otherPgErr, wantRaw: otherPgErr},
		{name: "non-postgres error passes through", in: plainErr, wantRaw: plainErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.in)
			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
			} else {
				assert.Equal(t, tt.wantRaw, got)
			}
		})
	}
}

func TestClassifyError_KeepsConstraintName(t *testing.T) {
	err := ClassifyError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
	assert.ErrorContains(t, err, "users_username_key")
}
