package tccruntime

import "testing"

func acquire(t *testing.T) *Guard {
	t.Helper()
	g, err := Acquire()
	if err != nil {
		t.Fatalf("acquire guard: %v", err)
	}
	t.Cleanup(g.Release)
	return g
}

func open(t *testing.T, g *Guard) *Context {
	t.Helper()
	ctx, err := Open(g)
	if err != nil {
		t.Fatalf("open context: %v", err)
	}
	t.Cleanup(ctx.Close)
	return ctx
}

func mustPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", what)
		}
	}()
	fn()
}
