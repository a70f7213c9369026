package tccruntime

import (
	stderrors "errors"
	"sync"
	"testing"

	tccerrors "github.com/wippyai/tcc-runtime/errors"
)

func TestGuardExclusive(t *testing.T) {
	g1, err := Acquire()
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}

	if _, err := Acquire(); err == nil {
		t.Fatal("second acquire succeeded while first guard is live")
	} else if !stderrors.Is(err, tccerrors.Conflict("")) {
		t.Errorf("second acquire: got %v, want guard conflict", err)
	}

	// The first guard is unaffected by the failed attempt.
	ctx := open(t, g1)
	ctx.Close()
	g1.Release()

	g2, err := Acquire()
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	g2.Release()
}

func TestGuardReleaseIdempotent(t *testing.T) {
	g, err := Acquire()
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	g.Release()
	g.Release()

	g2, err := Acquire()
	if err != nil {
		t.Fatalf("acquire after double release: %v", err)
	}
	g2.Release()
}

func TestGuardConcurrentAcquire(t *testing.T) {
	const attempts = 32

	var wg sync.WaitGroup
	winners := make(chan *Guard, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g, err := Acquire(); err == nil {
				winners <- g
			}
		}()
	}
	wg.Wait()
	close(winners)

	var won []*Guard
	for g := range winners {
		won = append(won, g)
	}
	if len(won) != 1 {
		t.Fatalf("got %d live guards, want exactly 1", len(won))
	}
	won[0].Release()
}

func TestOpenOnReleasedGuardPanics(t *testing.T) {
	g, err := Acquire()
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	g.Release()

	mustPanic(t, "Open on released guard", func() {
		Open(g) //nolint:errcheck
	})
}
