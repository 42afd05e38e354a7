package actor

import (
	"io"
	"log/slog"
	"testing"

	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/behavior/mocks"
	"github.com/milk9111/quarrel/ecs"
	"go.uber.org/mock/gomock"
)

const (
	self   = ecs.Entity(1)
	player = ecs.Entity(2)
	other  = ecs.Entity(3)
)

type harness struct {
	body  *mocks.MockBody
	view  *mocks.MockPresenter
	world *mocks.MockWorld
	ctx   *behavior.Context
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		body:  mocks.NewMockBody(ctrl),
		view:  mocks.NewMockPresenter(ctrl),
		world: mocks.NewMockWorld(ctrl),
	}
	h.ctx = &behavior.Context{
		Entity: self,
		Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Body:   h.body,
		View:   h.view,
		World:  h.world,
	}
	return h
}
