package services

import (
	"sync"

	"github.com/andreicarpen/planting-calendar/internal/security"
)

// EmojiPicker hands out decoration glyphs from a fixed palette without
// repeating one until the whole palette has been used, then starts the cycle
// over. That matches the calendar's decorative de-duplication: no hard
// non-repetition guarantee across a session, just no repeats within a cycle.
type EmojiPicker struct {
	mu      sync.Mutex
	palette []string
	used    map[string]struct{}
}

func NewEmojiPicker(palette []string) *EmojiPicker {
	return &EmojiPicker{
		palette: palette,
		used:    make(map[string]struct{}, len(palette)),
	}
}

func (picker *EmojiPicker) Next() (string, error) {
	picker.mu.Lock()
	defer picker.mu.Unlock()

	remaining := make([]string, 0, len(picker.palette))
	for _, glyph := range picker.palette {
		if _, taken := picker.used[glyph]; !taken {
			remaining = append(remaining, glyph)
		}
	}

	if len(remaining) == 0 {
		picker.used = make(map[string]struct{}, len(picker.palette))
		remaining = picker.palette
	}

	index, err := security.RandomIndex(len(remaining))
	if err != nil {
		return "", err
	}

	glyph := remaining[index]
	picker.used[glyph] = struct{}{}
	return glyph, nil
}
