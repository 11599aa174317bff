// internal/models/room.go
package models

// Room is a bot-managed multiplayer lobby as reported by the backend.
// Identity (ID, RoomID) and the lifecycle flags are server-assigned; the
// client only ever submits the mutable configuration subset (see RoomForm).
type Room struct {
	ID       string `json:"id"`
	RoomID   string `json:"room_id"`
	Name     string `json:"name"`
	RoomSize int    `json:"room_size"`

	BotMode   string `json:"bot_mode"`
	PlayMode  string `json:"play_mode"`
	ScoreMode string `json:"score_mode"`
	TeamMode  string `json:"team_mode"`

	Beatmap BeatmapFilter `json:"beatmap"`

	// Lifecycle flags, promoted server-side as the bot joins IRC, opens the
	// in-game room and applies its settings.
	IsConnected  bool `json:"is_connected"`
	IsCreated    bool `json:"is_created"`
	IsConfigured bool `json:"is_configured"`

	Skips []string `json:"skips"`
	Users []string `json:"users"`
}

// CanModify reports whether the room is established enough for update or
// delete requests. The backend rejects mutations of rooms it has not yet
// connected and created, so the client refuses to issue them.
func (r *Room) CanModify() bool {
	return r.IsConnected && r.IsCreated
}
