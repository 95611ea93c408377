package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"enoki-admin/modules/rfid/entity"
)

// fakeTransport hands its callbacks back to the test so events can be driven
// directly instead of over a socket.
type fakeTransport struct {
	mu     sync.Mutex
	events TransportEvents
	runs   int
	ready  chan struct{}
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{ready: make(chan struct{}, 8)}
}

func (t *fakeTransport) Run(ctx context.Context, address string, events TransportEvents) {
	t.mu.Lock()
	t.events = events
	t.runs++
	t.mu.Unlock()
	t.ready <- struct{}{}
	<-ctx.Done()
}

func (t *fakeTransport) waitReady(tb testing.TB) {
	tb.Helper()
	select {
	case <-t.ready:
	case <-time.After(time.Second):
		tb.Fatal("transport was never started")
	}
}

func (t *fakeTransport) connect() {
	t.mu.Lock()
	fn := t.events.OnConnect
	t.mu.Unlock()
	fn()
}

func (t *fakeTransport) disconnect() {
	t.mu.Lock()
	fn := t.events.OnDisconnect
	t.mu.Unlock()
	fn()
}

func (t *fakeTransport) emit(evt entity.BadgeEvent) {
	t.mu.Lock()
	fn := t.events.OnMessage
	t.mu.Unlock()
	fn(evt)
}

func (t *fakeTransport) runCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runs
}

type failingSoundPlayer struct {
	mu    sync.Mutex
	calls int
}

func (p *failingSoundPlayer) Play(string) error {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return errors.New("no audio device")
}

func (p *failingSoundPlayer) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func newTestClient(t *testing.T, tr *fakeTransport, opts Options) *BridgeClient {
	t.Helper()
	opts.Transport = tr
	if opts.Sound == nil {
		opts.Sound = NopSoundPlayer{}
	}
	if opts.PulseDuration == 0 {
		opts.PulseDuration = 40 * time.Millisecond
	}
	opts.Enabled = true
	c := NewBridgeClient(opts)
	t.Cleanup(c.Close)
	tr.waitReady(t)
	return c
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestBridgeClientForwardsEvents(t *testing.T) {
	tr := newFakeTransport()

	var mu sync.Mutex
	var got []entity.BadgeEvent
	c := newTestClient(t, tr, Options{
		OnEvent: func(evt entity.BadgeEvent) {
			mu.Lock()
			got = append(got, evt)
			mu.Unlock()
		},
	})

	tr.connect()
	if !c.Connected() {
		t.Fatal("expected connected after transport connect")
	}

	evt := entity.BadgeEvent{Type: entity.EventTypeBadgeRead, Data: "04A1B2C3"}
	tr.emit(evt)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 || got[0] != evt {
		t.Fatalf("expected forwarded event %+v, got %+v", evt, got)
	}
	if c.LastEvent() != evt {
		t.Fatalf("expected last event %+v, got %+v", evt, c.LastEvent())
	}
}

func TestBridgeClientPulseResetsAfterWindow(t *testing.T) {
	tr := newFakeTransport()
	c := newTestClient(t, tr, Options{PulseDuration: 30 * time.Millisecond})

	tr.connect()
	tr.emit(entity.BadgeEvent{Type: entity.EventTypeBadgeRead, Data: "tag-1"})

	if !c.Pulsing() {
		t.Fatal("expected pulse raised immediately after event")
	}
	waitFor(t, func() bool { return !c.Pulsing() }, "pulse never reset after window elapsed")
}

func TestBridgeClientPulseRestartsOnNewEvent(t *testing.T) {
	tr := newFakeTransport()
	c := newTestClient(t, tr, Options{PulseDuration: 60 * time.Millisecond})

	tr.connect()
	tr.emit(entity.BadgeEvent{Type: entity.EventTypeBadgeRead, Data: "tag-1"})

	// Second event halfway through the window restarts it
	time.Sleep(30 * time.Millisecond)
	tr.emit(entity.BadgeEvent{Type: entity.EventTypeBadgeRead, Data: "tag-2"})

	// Past the first event's deadline but inside the second's window
	time.Sleep(45 * time.Millisecond)
	if !c.Pulsing() {
		t.Fatal("second event should have restarted the pulse window")
	}
	waitFor(t, func() bool { return !c.Pulsing() }, "pulse never reset after restarted window")
}

func TestBridgeClientDisconnectClearsState(t *testing.T) {
	tr := newFakeTransport()

	var mu sync.Mutex
	var connectivity []bool
	c := newTestClient(t, tr, Options{
		OnConnectivityChange: func(up bool) {
			mu.Lock()
			connectivity = append(connectivity, up)
			mu.Unlock()
		},
	})

	tr.connect()
	tr.emit(entity.BadgeEvent{Type: entity.EventTypeBadgeRead, Data: "tag-1"})
	tr.disconnect()

	if c.Connected() {
		t.Fatal("expected disconnected after transport disconnect")
	}
	if !c.LastEvent().IsZero() {
		t.Fatalf("expected last event cleared on disconnect, got %+v", c.LastEvent())
	}

	mu.Lock()
	defer mu.Unlock()
	want := []bool{true, false}
	if len(connectivity) != len(want) {
		t.Fatalf("expected connectivity changes %v, got %v", want, connectivity)
	}
	for i := range want {
		if connectivity[i] != want[i] {
			t.Fatalf("expected connectivity changes %v, got %v", want, connectivity)
		}
	}
}

func TestBridgeClientTeardownSilencesCallbacks(t *testing.T) {
	tr := newFakeTransport()

	var mu sync.Mutex
	events := 0
	c := newTestClient(t, tr, Options{
		OnEvent: func(entity.BadgeEvent) {
			mu.Lock()
			events++
			mu.Unlock()
		},
	})

	tr.connect()
	c.Close()

	// Late callbacks from the dying transport must be ignored, not panic
	tr.emit(entity.BadgeEvent{Type: entity.EventTypeBadgeRead, Data: "late"})
	tr.disconnect()

	mu.Lock()
	defer mu.Unlock()
	if events != 0 {
		t.Fatalf("expected no events after teardown, got %d", events)
	}
	if c.Connected() || c.Pulsing() || !c.LastEvent().IsZero() {
		t.Fatal("expected all state cleared after teardown")
	}
}

func TestBridgeClientReenableStartsFresh(t *testing.T) {
	tr := newFakeTransport()
	c := newTestClient(t, tr, Options{})

	tr.connect()
	tr.emit(entity.BadgeEvent{Type: entity.EventTypeBadgeRead, Data: "tag-1"})

	c.SetEnabled(false)
	if c.Connected() || !c.LastEvent().IsZero() {
		t.Fatal("expected state cleared after disable")
	}

	c.SetEnabled(true)
	tr.waitReady(t)
	if tr.runCount() != 2 {
		t.Fatalf("expected a fresh transport session, run count = %d", tr.runCount())
	}
	if c.Connected() || c.Pulsing() || !c.LastEvent().IsZero() {
		t.Fatal("expected no state carried into the new session")
	}
}

func TestBridgeClientSoundFailureDoesNotBlockEvents(t *testing.T) {
	tr := newFakeTransport()
	player := &failingSoundPlayer{}

	var mu sync.Mutex
	events := 0
	c := newTestClient(t, tr, Options{
		PlaySound: true,
		Sound:     player,
		OnEvent: func(entity.BadgeEvent) {
			mu.Lock()
			events++
			mu.Unlock()
		},
	})

	tr.connect()
	tr.emit(entity.BadgeEvent{Type: entity.EventTypeBadgeRead, Data: "tag-1"})

	mu.Lock()
	defer mu.Unlock()
	if events != 1 {
		t.Fatalf("expected event delivered despite sound failure, got %d", events)
	}
	if player.callCount() != 1 {
		t.Fatalf("expected one playback attempt, got %d", player.callCount())
	}
	if c.LastEvent().Data != "tag-1" {
		t.Fatal("expected last event recorded despite sound failure")
	}
}
