package scenario

import (
	"fmt"
	"strings"
	"time"
)

// Speed is a named pacing preset.
type Speed struct {
	Name  string
	Delay time.Duration
}

// SpeedPresets lists the visualizer speeds, fastest first.
var SpeedPresets = []Speed{
	{Name: "instant", Delay: 0},
	{Name: "fast", Delay: 50 * time.Millisecond},
	{Name: "normal", Delay: 100 * time.Millisecond},
	{Name: "slow", Delay: 200 * time.Millisecond},
}

// ParseSpeed maps a preset name (case-insensitive) to its delay.
// The empty string is "instant".
func ParseSpeed(name string) (time.Duration, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, nil
	}
	for _, sp := range SpeedPresets {
		if sp.Name == name {
			return sp.Delay, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown speed %q", ErrBadDelay, name)
}
