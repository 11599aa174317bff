// internal/models/form_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEnums is a static EnumSource for validation tests.
type fakeEnums map[string][]string

func (f fakeEnums) Valid(kind, value string) bool {
	for _, v := range f[kind] {
		if v == value {
			return true
		}
	}
	return false
}

func testEnums() fakeEnums {
	return fakeEnums{
		EnumBotMode:    {"AUTO_HOST", "AUTO_ROTATE_MAP"},
		EnumPlayMode:   {"OSU", "TAIKO", "CATCH_THE_BEAT", "MANIA"},
		EnumScoreMode:  {"SCORE", "ACCURACY", "COMBO", "SCORE_V2"},
		EnumTeamMode:   {"HEAD_TO_HEAD", "TAG_COOP", "TEAM_VS", "TAG_VS"},
		EnumRankStatus: {"RANKED", "APPROVED", "QUALIFIED", "LOVED"},
	}
}

func validForm() RoomForm {
	return RoomForm{
		Name:      "Test",
		RoomSize:  16,
		BotMode:   "AUTO_HOST",
		PlayMode:  "OSU",
		ScoreMode: "SCORE_V2",
		TeamMode:  "HEAD_TO_HEAD",
		Beatmap: BeatmapFilter{
			Star:      Range{3, 6},
			CS:        Range{0, 10},
			AR:        Range{0, 10},
			OD:        Range{0, 10},
			Length:    Range{60, 180},
			BPM:       Range{120, 180},
			ForceStat: true,
		},
	}
}

func TestValidFormPasses(t *testing.T) {
	form := validForm()
	require.NoError(t, form.Validate(testEnums()))
}

func TestInvertedRangeRejected(t *testing.T) {
	form := validForm()
	form.Beatmap.Star = Range{8, 2}
	err := form.Validate(testEnums())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "star")
}

func TestRangeOutsideBoundsRejected(t *testing.T) {
	form := validForm()
	form.Beatmap.BPM = Range{120, 400}
	require.Error(t, form.Validate(testEnums()))

	form = validForm()
	form.Beatmap.Length = Range{0, 3600}
	require.Error(t, form.Validate(testEnums()))

	form = validForm()
	form.Beatmap.AR = Range{-1, 5}
	require.Error(t, form.Validate(testEnums()))
}

func TestRoomSizeBounds(t *testing.T) {
	form := validForm()
	form.RoomSize = 0
	require.Error(t, form.Validate(testEnums()))

	form.RoomSize = 17
	require.Error(t, form.Validate(testEnums()))

	form.RoomSize = 1
	require.NoError(t, form.Validate(testEnums()))
}

func TestUnknownModeRejected(t *testing.T) {
	form := validForm()
	form.BotMode = "AUTO_PILOT"
	err := form.Validate(testEnums())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOT_MODE")
}

func TestUnknownRankStatusRejected(t *testing.T) {
	form := validForm()
	form.Beatmap.RankStatus = []string{"RANKED", "LEGENDARY"}
	err := form.Validate(testEnums())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LEGENDARY")
}

// Validation must fail closed when nothing has been fetched: every enum
// value is unknown against an empty source.
func TestEmptyEnumSourceRejectsModes(t *testing.T) {
	form := validForm()
	require.Error(t, form.Validate(fakeEnums{}))
}

func TestFormFromRoomDropsServerFields(t *testing.T) {
	room := Room{
		ID:           "abc",
		RoomID:       "#mp_123",
		Name:         "rotation lobby",
		RoomSize:     8,
		BotMode:      "AUTO_ROTATE_MAP",
		PlayMode:     "MANIA",
		ScoreMode:    "ACCURACY",
		TeamMode:     "TEAM_VS",
		Beatmap:      BeatmapFilter{Star: Range{4, 5.5}, BPM: Range{100, 200}},
		IsConnected:  true,
		IsCreated:    true,
		IsConfigured: true,
		Skips:        []string{"u1"},
		Users:        []string{"u1", "u2"},
	}

	form := FormFromRoom(room)
	assert.Equal(t, room.Name, form.Name)
	assert.Equal(t, room.RoomSize, form.RoomSize)
	assert.Equal(t, room.BotMode, form.BotMode)
	assert.Equal(t, room.Beatmap, form.Beatmap)
	assert.Empty(t, form.Password, "password is write-only and never round-trips")
}

func TestCanModifyRequiresConnectedAndCreated(t *testing.T) {
	cases := []struct {
		connected, created, want bool
	}{
		{false, false, false},
		{true, false, false},
		{false, true, false},
		{true, true, true},
	}
	for _, c := range cases {
		r := Room{IsConnected: c.connected, IsCreated: c.created}
		assert.Equal(t, c.want, r.CanModify())
	}
}
