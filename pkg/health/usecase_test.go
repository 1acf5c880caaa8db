package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/users/pkg/health"
	"github.com/artem13815/users/pkg/health/checkers"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestReady_NoCheckers(t *testing.T) {
	assert.NoError(t, health.NewService().Ready(context.Background()))
}

func TestReady_AllHealthy(t *testing.T) {
	svc := health.NewService(checkers.NewPostgresChecker(pinger{}))
	assert.NoError(t, svc.Ready(context.Background()))
}

func TestReady_ReportsFailingChecker(t *testing.T) {
	down := errors.New("connection refused")
	svc := health.NewService(checkers.NewPostgresChecker(pinger{err: down}))

	err := svc.Ready(context.Background())
	assert.ErrorIs(t, err, down)
	assert.EqualError(t, err, "postgres: connection refused")
}
