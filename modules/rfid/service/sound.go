package service

import (
	"fmt"
	"os/exec"

	"enoki-admin/core/logger"
)

// SoundPlayer plays the per-event notification sound. Playback is best
// effort: failures are logged and never interrupt event delivery.
type SoundPlayer interface {
	Play(resource string) error
}

// CommandSoundPlayer shells out to a player binary (paplay/aplay/afplay).
type CommandSoundPlayer struct {
	Binary string
}

func NewCommandSoundPlayer(binary string) *CommandSoundPlayer {
	if binary == "" {
		binary = "paplay"
	}
	return &CommandSoundPlayer{Binary: binary}
}

func (p *CommandSoundPlayer) Play(resource string) error {
	path, err := exec.LookPath(p.Binary)
	if err != nil {
		return fmt.Errorf("sound player %q not available: %w", p.Binary, err)
	}
	// Fire and forget; the event path must not wait on audio
	cmd := exec.Command(path, resource)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start sound player: %w", err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			logger.Debug("Sound playback exited with error", "resource", resource, "error", err)
		}
	}()
	return nil
}

// NopSoundPlayer discards playback requests. Used where no audio device
// exists (tests, headless deployments).
type NopSoundPlayer struct{}

func (NopSoundPlayer) Play(string) error { return nil }
