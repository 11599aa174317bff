// internal/models/form.go
package models

import "fmt"

// Room size limits imposed by the multiplayer service.
const (
	MinRoomSize = 1
	MaxRoomSize = 16
)

// RoomForm is the mutable projection of Room used for create and update
// requests: everything in Room except server-assigned identity and lifecycle
// state, plus an optional write-only password.
type RoomForm struct {
	Name     string `json:"name"`
	RoomSize int    `json:"room_size"`
	Password string `json:"password,omitempty"`

	BotMode   string `json:"bot_mode"`
	PlayMode  string `json:"play_mode"`
	ScoreMode string `json:"score_mode"`
	TeamMode  string `json:"team_mode"`

	Beatmap BeatmapFilter `json:"beatmap"`
}

// FormFromRoom round-trips a server room back into an editable form by
// dropping the server-owned fields. The password is never echoed by the
// backend, so it comes back empty.
func FormFromRoom(r Room) RoomForm {
	return RoomForm{
		Name:      r.Name,
		RoomSize:  r.RoomSize,
		BotMode:   r.BotMode,
		PlayMode:  r.PlayMode,
		ScoreMode: r.ScoreMode,
		TeamMode:  r.TeamMode,
		Beatmap:   r.Beatmap,
	}
}

// Validate checks the form against static bounds and the fetched enum sets
// before it is submitted. Mode values not present in the fetched sets are
// rejected, including every value when nothing has been fetched yet.
func (f *RoomForm) Validate(src EnumSource) error {
	if f.Name == "" {
		return fmt.Errorf("room name is required")
	}
	if f.RoomSize < MinRoomSize || f.RoomSize > MaxRoomSize {
		return fmt.Errorf("room_size %d outside [%d, %d]", f.RoomSize, MinRoomSize, MaxRoomSize)
	}

	modes := []struct {
		kind, value string
	}{
		{EnumBotMode, f.BotMode},
		{EnumPlayMode, f.PlayMode},
		{EnumScoreMode, f.ScoreMode},
		{EnumTeamMode, f.TeamMode},
	}
	for _, m := range modes {
		if !src.Valid(m.kind, m.value) {
			return fmt.Errorf("%s: unknown value %q", m.kind, m.value)
		}
	}

	return f.Beatmap.Validate(src)
}
