package animations

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrEmptySet      = errors.New("animation set has no statuses")
	ErrMissingStatus = errors.New("missing animation status")
	ErrEmptyStatus   = errors.New("animation status has no frames")
)

// Frame is one displayed image and its collision silhouette. Image may be nil in
// headless use, in which case callers fall back to rectangle collision.
type Frame struct {
	Image *ebiten.Image
	Mask  *gamemath.Mask
}

// Set maps status names to ordered, non-empty frame sequences.
type Set struct {
	Sequences map[string][]Frame
	Default   string
}

// NewSet validates sequences and returns a set whose fallback is defaultKey.
func NewSet(defaultKey string, sequences map[string][]Frame) (*Set, error) {
	if len(sequences) == 0 {
		return nil, ErrEmptySet
	}
	for status, frames := range sequences {
		if len(frames) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyStatus, status)
		}
	}
	if _, ok := sequences[defaultKey]; !ok {
		return nil, fmt.Errorf("%w: default %q", ErrMissingStatus, defaultKey)
	}
	return &Set{Sequences: sequences, Default: defaultKey}, nil
}

// Resolve returns the key to play for status: an exact match, then the bare action
// ("left_walk" falls back to "walk"), then the default key.
func (s *Set) Resolve(status string) string {
	if _, ok := s.Sequences[status]; ok {
		return status
	}
	if i := strings.LastIndexByte(status, '_'); i >= 0 {
		if _, ok := s.Sequences[status[i+1:]]; ok {
			return status[i+1:]
		}
	}
	return s.Default
}

// Frames returns the resolved sequence for status.
func (s *Set) Frames(status string) []Frame {
	return s.Sequences[s.Resolve(status)]
}

// Statuses returns the sorted status names.
func (s *Set) Statuses() []string {
	keys := make([]string, 0, len(s.Sequences))
	for k := range s.Sequences {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Require fails when any of statuses is neither present nor resolvable by action.
func (s *Set) Require(statuses ...string) error {
	for _, st := range statuses {
		if st != s.Default && s.Resolve(st) == s.Default {
			return fmt.Errorf("%w: %q", ErrMissingStatus, st)
		}
	}
	return nil
}

// Placeholder builds a set of solid w*h masks without images, one per status.
// Used for headless simulation.
func Placeholder(w, h int, frames int, statuses ...string) *Set {
	seqs := make(map[string][]Frame, len(statuses))
	mask := gamemath.SolidMask(w, h)
	for _, st := range statuses {
		seq := make([]Frame, frames)
		for i := range seq {
			seq[i] = Frame{Mask: mask}
		}
		seqs[st] = seq
	}
	def := ""
	if len(statuses) > 0 {
		def = statuses[0]
	}
	return &Set{Sequences: seqs, Default: def}
}
