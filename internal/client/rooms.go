// internal/client/rooms.go
package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/astrolabio1417/legacy-osu-bot/internal/models"
)

// Enums fetches the authoritative valid-value sets for room configuration.
func (c *Client) Enums(ctx context.Context) (models.BotEnums, error) {
	var enums models.BotEnums
	err := c.do(ctx, http.MethodGet, "/enums", nil, &enums)
	return enums, err
}

// ListRooms returns every room the bot currently manages, in server order.
func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := c.do(ctx, http.MethodGet, "/room", nil, &rooms)
	return rooms, err
}

// GetRoom fetches a single room by its server-assigned id.
func (c *Client) GetRoom(ctx context.Context, id string) (models.Room, error) {
	var room models.Room
	err := c.do(ctx, http.MethodGet, "/room/"+url.PathEscape(id), nil, &room)
	return room, err
}

// CreateRoom submits a new room configuration. The returned room carries the
// server-assigned identity; its lifecycle flags start false and are promoted
// by the backend over subsequent polls.
func (c *Client) CreateRoom(ctx context.Context, form models.RoomForm) (models.Room, error) {
	var room models.Room
	err := c.do(ctx, http.MethodPost, "/room", form, &room)
	return room, err
}

// UpdateRoom replaces the mutable configuration of an existing room.
func (c *Client) UpdateRoom(ctx context.Context, id string, form models.RoomForm) (models.Room, error) {
	var room models.Room
	err := c.do(ctx, http.MethodPut, "/room/"+url.PathEscape(id), form, &room)
	return room, err
}

// DeleteRoom asks the backend to close a room. The listing reflects the
// removal on a later poll, not immediately.
func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/room/"+url.PathEscape(id), nil, nil)
}
