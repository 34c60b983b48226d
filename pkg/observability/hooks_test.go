package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPlacementHooks{}
	p.OnPlacement(ctx, PlacementEvent{Source: "cli", Width: 6, Height: 2, Alternatives: 4})

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/placements", "req-1")
	h.OnResponse(ctx, "POST", "/v1/placements", "req-1", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Placement().(NoopPlacementHooks); !ok {
		t.Error("Placement() should return NoopPlacementHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customPlacement := &testPlacementHooks{}
	SetPlacementHooks(customPlacement)
	if Placement() != customPlacement {
		t.Error("SetPlacementHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// nil is ignored
	SetPlacementHooks(nil)
	if Placement() != customPlacement {
		t.Error("SetPlacementHooks(nil) should keep existing hooks")
	}

	Reset()
	if _, ok := Placement().(NoopPlacementHooks); !ok {
		t.Error("Reset() should restore NoopPlacementHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestPlacementHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	hooks := &testPlacementHooks{}
	SetPlacementHooks(hooks)

	Placement().OnPlacement(context.Background(), PlacementEvent{Source: "api", X: 6, Fallback: true})

	if len(hooks.events) != 1 {
		t.Fatalf("got %d events, want 1", len(hooks.events))
	}
	if ev := hooks.events[0]; ev.Source != "api" || ev.X != 6 || !ev.Fallback {
		t.Errorf("event = %+v", ev)
	}
}

type testPlacementHooks struct {
	mu     sync.Mutex
	events []PlacementEvent
}

func (h *testPlacementHooks) OnPlacement(_ context.Context, ev PlacementEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
}

type testHTTPHooks struct {
	NoopHTTPHooks
}
