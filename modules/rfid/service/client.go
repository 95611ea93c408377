package service

import (
	"context"
	"sync"
	"time"

	"enoki-admin/core/constants"
	"enoki-admin/core/logger"
	"enoki-admin/modules/rfid/entity"
)

// Options configures a BridgeClient. Zero values fall back to sane defaults.
type Options struct {
	ServerAddress        string
	Enabled              bool
	OnEvent              func(entity.BadgeEvent)
	OnConnectivityChange func(bool)
	PlaySound            bool
	SoundResource        string
	PulseDuration        time.Duration

	// Transport and Sound are injectable for tests; defaults are the
	// websocket transport and a command-line sound player.
	Transport Transport
	Sound     SoundPlayer
}

// BridgeClient owns one live connection to the RFID bridge. It forwards every
// typed event to the configured callback, tracks connectivity, and raises a
// transient pulse flag per inbound event for UI feedback. Hardware absence is
// an expected operating condition: connection loss only flips Connected to
// false, it is never an error.
type BridgeClient struct {
	opts Options

	mu         sync.Mutex
	generation int
	cancel     context.CancelFunc
	connected  bool
	pulsing    bool
	lastEvent  entity.BadgeEvent
	pulseTimer *time.Timer
	pulseSeq   int
}

func NewBridgeClient(opts Options) *BridgeClient {
	if opts.PulseDuration <= 0 {
		opts.PulseDuration = time.Duration(constants.DefaultPulseDurationMs) * time.Millisecond
	}
	if opts.Transport == nil {
		opts.Transport = NewWebsocketTransport()
	}
	if opts.Sound == nil {
		opts.Sound = NewCommandSoundPlayer("")
	}

	c := &BridgeClient{opts: opts}
	if opts.Enabled {
		c.SetEnabled(true)
	}
	return c
}

// SetEnabled opens or closes the connection. Toggling off then on establishes
// a fresh connection with no state carried over.
func (c *BridgeClient) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if enabled {
		if c.cancel != nil {
			return // already running
		}
		c.generation++
		gen := c.generation

		ctx, cancel := context.WithCancel(context.Background())
		c.cancel = cancel

		go c.opts.Transport.Run(ctx, c.opts.ServerAddress, TransportEvents{
			OnConnect:    func() { c.handleConnect(gen) },
			OnDisconnect: func() { c.handleDisconnect(gen) },
			OnMessage:    func(evt entity.BadgeEvent) { c.handleEvent(gen, evt) },
		})
		return
	}

	c.teardownLocked()
}

// Close releases the connection and cancels the pending pulse reset. Safe to
// call on every exit path, including when nothing is running.
func (c *BridgeClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teardownLocked()
}

// teardownLocked invalidates the running session so late transport callbacks
// and a pending pulse timer cannot touch the disposed state.
func (c *BridgeClient) teardownLocked() {
	c.generation++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.pulseTimer != nil {
		c.pulseTimer.Stop()
		c.pulseTimer = nil
	}
	c.connected = false
	c.pulsing = false
	c.lastEvent = entity.BadgeEvent{}
}

func (c *BridgeClient) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *BridgeClient) Pulsing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pulsing
}

func (c *BridgeClient) LastEvent() entity.BadgeEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastEvent
}

func (c *BridgeClient) handleConnect(gen int) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.connected = true
	notify := c.opts.OnConnectivityChange
	c.mu.Unlock()

	if notify != nil {
		notify(true)
	}
}

func (c *BridgeClient) handleDisconnect(gen int) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.connected = false
	c.lastEvent = entity.BadgeEvent{}
	notify := c.opts.OnConnectivityChange
	c.mu.Unlock()

	if notify != nil {
		notify(false)
	}
}

func (c *BridgeClient) handleEvent(gen int, evt entity.BadgeEvent) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}

	c.lastEvent = evt
	// An inbound event implies the wire is up even if the connect
	// notification was missed
	c.connected = true
	c.pulsing = true

	// A new event before the timer fires restarts the pulse window. The
	// sequence number keeps an already-fired timer from clearing a pulse
	// raised by a later event.
	if c.pulseTimer != nil {
		c.pulseTimer.Stop()
	}
	c.pulseSeq++
	seq := c.pulseSeq
	c.pulseTimer = time.AfterFunc(c.opts.PulseDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.generation || seq != c.pulseSeq {
			return
		}
		c.pulsing = false
	})

	playSound := c.opts.PlaySound
	soundResource := c.opts.SoundResource
	sound := c.opts.Sound
	onEvent := c.opts.OnEvent
	c.mu.Unlock()

	if playSound {
		if err := sound.Play(soundResource); err != nil {
			logger.Warn("Failed to play notification sound", "error", err)
		}
	}

	if onEvent != nil {
		onEvent(evt)
	}
}
