package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestConnection_Ping_NilPool(t *testing.T) {
	conn := &Connection{}

	assert.Error(t, conn.Ping(t.Context()))
	assert.NoError(t, conn.Close())
}
