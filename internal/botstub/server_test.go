// internal/botstub/server_test.go
package botstub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrolabio1417/legacy-osu-bot/internal/models"
)

func TestAdvanceOrder(t *testing.T) {
	room := &models.Room{}

	advance(room)
	assert.True(t, room.IsConnected)
	assert.False(t, room.IsCreated)
	assert.False(t, room.IsConfigured)

	advance(room)
	assert.True(t, room.IsCreated)
	assert.False(t, room.IsConfigured)

	advance(room)
	assert.True(t, room.IsConfigured)
}

func TestApplyFormLeavesServerFields(t *testing.T) {
	room := &models.Room{ID: "abc", RoomID: "#mp_1", IsConnected: true, Users: []string{"u1"}}
	applyForm(room, models.RoomForm{Name: "renamed", RoomSize: 4, Password: "secret"})

	assert.Equal(t, "abc", room.ID)
	assert.Equal(t, "#mp_1", room.RoomID)
	assert.True(t, room.IsConnected)
	assert.Equal(t, []string{"u1"}, room.Users)
	assert.Equal(t, "renamed", room.Name)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := hashPassword("hunter2")
	require.NoError(t, err)

	ok, err := checkPassword("hunter2", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = checkPassword("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = checkPassword("hunter2", "not-a-hash")
	require.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	s, err := New(Options{})
	require.NoError(t, err)

	token, err := s.newToken("operator")
	require.NoError(t, err)

	username, err := s.parseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", username)

	_, err = s.parseToken("garbage")
	require.Error(t, err)

	// Tokens from another stub instance carry a different key.
	other, err := New(Options{})
	require.NoError(t, err)
	foreign, err := other.newToken("operator")
	require.NoError(t, err)
	_, err = s.parseToken(foreign)
	require.Error(t, err)
}
