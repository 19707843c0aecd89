package app

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubService struct {
	name     string
	startErr error
	stopped  chan struct{}
}

func newStubService(name string) *stubService {
	return &stubService{name: name, stopped: make(chan struct{})}
}

func (s *stubService) Name() string { return s.name }

func (s *stubService) Start(ctx context.Context) error {
	if s.startErr != nil {
		return s.startErr
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubService) Stop(ctx context.Context) error {
	close(s.stopped)
	return nil
}

func TestNewRunnerIgnoresNilServices(t *testing.T) {
	runner := NewRunner(nil, newStubService("api"), nil)
	if len(runner.services) != 1 {
		t.Fatalf("services want 1 got %d", len(runner.services))
	}
}

func TestRunnerStopsAllServicesWhenOneFails(t *testing.T) {
	boom := errors.New("listen failed")
	failing := newStubService("failing")
	failing.startErr = boom
	healthy := newStubService("healthy")

	err := NewRunner(failing, healthy).Run(context.Background(), time.Second, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("want start error got %v", err)
	}
	select {
	case <-healthy.stopped:
	default:
		t.Fatalf("healthy service should have been stopped")
	}
}

func TestRunnerTreatsContextCancelAsCleanShutdown(t *testing.T) {
	svc := newStubService("api")
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	if err := NewRunner(svc).Run(ctx, time.Second, nil); err != nil {
		t.Fatalf("cancel should read as clean shutdown, got %v", err)
	}
	select {
	case <-svc.stopped:
	default:
		t.Fatalf("service should have been stopped")
	}
}
