package postgres

import (
	"context"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/users/pkg/storage/postgres/migrations"
)

func TestMigrations_CollectInOrder(t *testing.T) {
	goose.SetBaseFS(migrations.FS)
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	ms, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, int64(1), ms[0].Version)
	assert.Equal(t, int64(2), ms[1].Version)
}

func TestConnect_RejectsBadDSN(t *testing.T) {
	_, err := Connect(context.Background(), "postgres://localhost:99999/users")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse pgx config")
}
