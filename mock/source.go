package mock

import (
	"context"
	"time"

	"github.com/fwojciec/lunagames"
)

var _ lunagames.GameSource = (*GameSource)(nil)

// GameSource is a mock implementation of lunagames.GameSource.
type GameSource struct {
	RefreshFn  func(ctx context.Context) lunagames.State
	CurrentFn  func() lunagames.State
	OnUpdateFn func(listener lunagames.Listener) func()
	StartFn    func(ctx context.Context, interval time.Duration) (lunagames.State, error)
	StopFn     func() error
}

func (s *GameSource) Refresh(ctx context.Context) lunagames.State {
	return s.RefreshFn(ctx)
}

func (s *GameSource) Current() lunagames.State {
	return s.CurrentFn()
}

func (s *GameSource) OnUpdate(listener lunagames.Listener) func() {
	return s.OnUpdateFn(listener)
}

func (s *GameSource) Start(ctx context.Context, interval time.Duration) (lunagames.State, error) {
	return s.StartFn(ctx, interval)
}

func (s *GameSource) Stop() error {
	return s.StopFn()
}
