// internal/models/beatmap.go
package models

import "fmt"

// Range is a closed numeric interval serialized as a two-element JSON array
// [lo, hi]. Bounds are always supplied as a pair, never a single scalar.
type Range [2]float64

// Lo returns the lower bound.
func (r Range) Lo() float64 { return r[0] }

// Hi returns the upper bound.
func (r Range) Hi() float64 { return r[1] }

// Ordered reports whether lo <= hi.
func (r Range) Ordered() bool { return r[0] <= r[1] }

// Within reports whether the whole interval sits inside [min, max].
func (r Range) Within(min, max float64) bool {
	return r[0] >= min && r[1] <= max
}

// Beatmap selection bounds. Song length is seconds, capped at 30 minutes.
const (
	MaxDifficulty = 10
	MaxLengthSec  = 1800
	MaxBPM        = 300
)

// BeatmapFilter is the set of constraints the bot uses to pick eligible maps
// for a room. Every range is inclusive on both ends.
type BeatmapFilter struct {
	Star   Range `json:"star"`
	CS     Range `json:"cs"`
	AR     Range `json:"ar"`
	OD     Range `json:"od"`
	Length Range `json:"length"`
	BPM    Range `json:"bpm"`

	// RankStatus narrows selection to the given beatmap rank states. Empty
	// means no restriction. Valid members come from the fetched enum sets.
	RankStatus []string `json:"rank_status,omitempty"`

	// ForceStat tells the bot to ignore its natural map rotation and apply
	// these exact bounds.
	ForceStat bool `json:"force_stat"`
}

// Validate checks that every range is ordered and inside its field's bounds,
// and that every rank status is a member of the fetched RANK_STATUS set.
func (b *BeatmapFilter) Validate(src EnumSource) error {
	checks := []struct {
		name     string
		r        Range
		min, max float64
	}{
		{"star", b.Star, 0, MaxDifficulty},
		{"cs", b.CS, 0, MaxDifficulty},
		{"ar", b.AR, 0, MaxDifficulty},
		{"od", b.OD, 0, MaxDifficulty},
		{"length", b.Length, 0, MaxLengthSec},
		{"bpm", b.BPM, 0, MaxBPM},
	}
	for _, c := range checks {
		if !c.r.Ordered() {
			return fmt.Errorf("beatmap %s: lower bound %g exceeds upper bound %g", c.name, c.r.Lo(), c.r.Hi())
		}
		if !c.r.Within(c.min, c.max) {
			return fmt.Errorf("beatmap %s: range [%g, %g] outside [%g, %g]", c.name, c.r.Lo(), c.r.Hi(), c.min, c.max)
		}
	}
	for _, status := range b.RankStatus {
		if !src.Valid(EnumRankStatus, status) {
			return fmt.Errorf("beatmap rank_status: unknown value %q", status)
		}
	}
	return nil
}
