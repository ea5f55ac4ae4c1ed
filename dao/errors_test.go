package dao

import (
	"errors"
	"fmt"
	"testing"

	mysqlerr "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "gorm", err: fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), want: true},
		{name: "mysql", err: &mysqlerr.MySQLError{Number: 1062, Message: "Duplicate entry"}, want: true},
		{name: "mysql other", err: &mysqlerr.MySQLError{Number: 1146}, want: false},
		{name: "postgres", err: &pgconn.PgError{Code: "23505"}, want: true},
		{name: "sqlite text", err: errors.New("UNIQUE constraint failed: votes.user_id"), want: true},
		{name: "other", err: errors.New("connection refused"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateKey(tt.err))
		})
	}
}

func TestIsDeadlock(t *testing.T) {
	assert.True(t, IsDeadlock(&mysqlerr.MySQLError{Number: 1213}))
	assert.True(t, IsDeadlock(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, IsDeadlock(errors.New("boom")))
	assert.False(t, IsDeadlock(nil))
}
