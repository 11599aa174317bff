// internal/models/enums.go
package models

// Enum kinds as named by the backend's /enums payload. The valid value sets
// themselves are late-bound: fetched at runtime, never compiled in.
const (
	EnumBotMode    = "BOT_MODE"
	EnumPlayMode   = "PLAY_MODE"
	EnumScoreMode  = "SCORE_MODE"
	EnumTeamMode   = "TEAM_MODE"
	EnumRankStatus = "RANK_STATUS"
)

// BotEnums is the /enums response: the authoritative valid-value sets for
// room configuration at fetch time.
type BotEnums struct {
	BotMode    []string `json:"BOT_MODE"`
	PlayMode   []string `json:"PLAY_MODE"`
	ScoreMode  []string `json:"SCORE_MODE"`
	TeamMode   []string `json:"TEAM_MODE"`
	RankStatus []string `json:"RANK_STATUS"`
}

// Values returns the value set for the given enum kind.
func (e BotEnums) Values(kind string) []string {
	switch kind {
	case EnumBotMode:
		return e.BotMode
	case EnumPlayMode:
		return e.PlayMode
	case EnumScoreMode:
		return e.ScoreMode
	case EnumTeamMode:
		return e.TeamMode
	case EnumRankStatus:
		return e.RankStatus
	}
	return nil
}

// EnumSource answers membership queries against the fetched enum sets.
// An implementation that has not fetched anything yet must answer false for
// every value, so validation fails closed rather than letting unknown
// members through.
type EnumSource interface {
	Valid(kind, value string) bool
}
