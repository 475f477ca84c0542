package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDB_WithoutRedis(t *testing.T) {
	db := &DB{}

	assert.ErrorIs(t, db.HealthCheck(context.Background()), ErrRedisUnavailable)
	assert.Nil(t, db.GetRedis())
	assert.NoError(t, db.Close())
}

func TestDB_NilReceiver(t *testing.T) {
	var db *DB

	assert.ErrorIs(t, db.HealthCheck(context.Background()), ErrRedisUnavailable)
	assert.Nil(t, db.GetRedis())
	assert.NoError(t, db.Close())
}
