// internal/console/service_test.go
package console

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrolabio1417/legacy-osu-bot/internal/client"
	"github.com/astrolabio1417/legacy-osu-bot/internal/models"
	"github.com/astrolabio1417/legacy-osu-bot/internal/watch"
)

// recorder collects notifications for assertions.
type recorder struct {
	successes []string
	failures  []string
}

func (r *recorder) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recorder) Failure(msg string) { r.failures = append(r.failures, msg) }

// fakeAPI scripts the backend's answers and records calls.
type fakeAPI struct {
	createErr error
	updateErr error
	deleteErr error
	loginErr  error
	startErr  error
	stopErr   error

	created []models.RoomForm
	updated []string
	deleted []string
	starts  int
	stops   int
}

func (f *fakeAPI) CreateRoom(ctx context.Context, form models.RoomForm) (models.Room, error) {
	if f.createErr != nil {
		return models.Room{}, f.createErr
	}
	f.created = append(f.created, form)
	return models.Room{ID: "new"}, nil
}

func (f *fakeAPI) UpdateRoom(ctx context.Context, id string, form models.RoomForm) (models.Room, error) {
	if f.updateErr != nil {
		return models.Room{}, f.updateErr
	}
	f.updated = append(f.updated, id)
	return models.Room{ID: id}, nil
}

func (f *fakeAPI) DeleteRoom(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (models.LoginResponse, error) {
	if f.loginErr != nil {
		return models.LoginResponse{}, f.loginErr
	}
	return models.LoginResponse{
		Session: models.Session{Username: username, IsAdmin: true},
		Message: "Login Success",
	}, nil
}

func (f *fakeAPI) Logout(ctx context.Context) error { return nil }

func (f *fakeAPI) StartIRC(ctx context.Context) error {
	f.starts++
	return f.startErr
}

func (f *fakeAPI) StopIRC(ctx context.Context) error {
	f.stops++
	return f.stopErr
}

// fakeEnums mirrors the fetched sets for validation.
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
		models.EnumBotMode:   {"AUTO_HOST", "AUTO_ROTATE_MAP"},
		models.EnumPlayMode:  {"OSU"},
		models.EnumScoreMode: {"SCORE"},
		models.EnumTeamMode:  {"HEAD_TO_HEAD"},
	}
}

func testForm() models.RoomForm {
	return models.RoomForm{
		Name:      "Test",
		RoomSize:  16,
		BotMode:   "AUTO_HOST",
		PlayMode:  "OSU",
		ScoreMode: "SCORE",
		TeamMode:  "HEAD_TO_HEAD",
		Beatmap: models.BeatmapFilter{
			Star:   models.Range{3, 6},
			CS:     models.Range{0, 10},
			AR:     models.Range{0, 10},
			OD:     models.Range{0, 10},
			Length: models.Range{60, 180},
			BPM:    models.Range{120, 180},
		},
	}
}

func newService(api *fakeAPI, rooms []models.Room) (*RoomService, *recorder) {
	store := &watch.RoomStore{}
	store.Replace(rooms)
	rec := &recorder{}
	return NewRoomService(api, store, testEnums(), rec, nil), rec
}

func TestCreateSuccess(t *testing.T) {
	api := &fakeAPI{}
	svc, rec := newService(api, nil)

	ok := svc.Create(context.Background(), testForm())
	require.True(t, ok)
	assert.Equal(t, []string{"Room Created"}, rec.successes)
	require.Len(t, api.created, 1)
	assert.Equal(t, testForm(), api.created[0])
}

func TestCreateValidationFailureSkipsRequest(t *testing.T) {
	api := &fakeAPI{}
	svc, rec := newService(api, nil)

	form := testForm()
	form.Beatmap.Star = models.Range{8, 2}
	ok := svc.Create(context.Background(), form)

	assert.False(t, ok)
	assert.Empty(t, api.created, "invalid forms must never reach the backend")
	require.Len(t, rec.failures, 1)
}

func TestCreateFailureSurfacesBackendMessage(t *testing.T) {
	api := &fakeAPI{createErr: &client.APIError{Status: 400, Message: "IRC is not running"}}
	svc, rec := newService(api, nil)

	ok := svc.Create(context.Background(), testForm())
	assert.False(t, ok)
	assert.Equal(t, []string{"IRC is not running"}, rec.failures)
}

func TestCreateFailureFallbackMessage(t *testing.T) {
	api := &fakeAPI{createErr: errors.New("connection refused")}
	svc, rec := newService(api, nil)

	ok := svc.Create(context.Background(), testForm())
	assert.False(t, ok)
	assert.Equal(t, []string{"Submission Failed"}, rec.failures)
}

// Update and delete are refused for rooms the server has not yet fully
// established, regardless of other fields.
func TestUpdateGatedOnLifecycle(t *testing.T) {
	cases := []struct {
		name string
		room models.Room
		want bool
	}{
		{"unconnected", models.Room{ID: "r", IsConnected: false, IsCreated: true}, false},
		{"uncreated", models.Room{ID: "r", IsConnected: true, IsCreated: false}, false},
		{"established", models.Room{ID: "r", IsConnected: true, IsCreated: true}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			api := &fakeAPI{}
			svc, _ := newService(api, []models.Room{c.room})

			ok := svc.Update(context.Background(), "r", testForm())
			assert.Equal(t, c.want, ok)
			if !c.want {
				assert.Empty(t, api.updated)
			}
		})
	}
}

func TestUpdateUnknownRoom(t *testing.T) {
	api := &fakeAPI{}
	svc, rec := newService(api, nil)

	ok := svc.Update(context.Background(), "ghost", testForm())
	assert.False(t, ok)
	assert.Equal(t, []string{"Room not found"}, rec.failures)
}

func TestDeleteBestEffort(t *testing.T) {
	api := &fakeAPI{deleteErr: errors.New("connection reset")}
	svc, rec := newService(api, []models.Room{{ID: "r", IsConnected: true, IsCreated: true}})

	// Must not panic or propagate; failure is reported and swallowed.
	svc.Delete(context.Background(), "r")
	assert.Equal(t, []string{"Deletion Failed"}, rec.failures)

	api.deleteErr = nil
	svc.Delete(context.Background(), "r")
	assert.Equal(t, []string{"Deletion Success"}, rec.successes)
	assert.Equal(t, []string{"r"}, api.deleted)
}

func TestDeleteGatedOnLifecycle(t *testing.T) {
	api := &fakeAPI{}
	svc, rec := newService(api, []models.Room{{ID: "r", IsConnected: true, IsCreated: false}})

	svc.Delete(context.Background(), "r")
	assert.Empty(t, api.deleted)
	require.Len(t, rec.failures, 1)
}

// The lifecycle gate only applies to rooms the snapshot knows about; an
// unknown id goes through, since the snapshot may lag the server.
func TestDeleteUnknownRoomStillSubmits(t *testing.T) {
	api := &fakeAPI{}
	svc, rec := newService(api, nil)

	svc.Delete(context.Background(), "ghost")
	assert.Equal(t, []string{"ghost"}, api.deleted)
	assert.Equal(t, []string{"Deletion Success"}, rec.successes)
}

func TestToggleIRCRequiresAdmin(t *testing.T) {
	api := &fakeAPI{}
	svc, rec := newService(api, nil)

	ok := svc.ToggleIRC(context.Background(), models.Session{IsAdmin: false})
	assert.False(t, ok)
	assert.Zero(t, api.starts)
	assert.Zero(t, api.stops)
	require.Len(t, rec.failures, 1)
}

func TestToggleIRCDirection(t *testing.T) {
	api := &fakeAPI{}
	svc, _ := newService(api, nil)

	require.True(t, svc.ToggleIRC(context.Background(), models.Session{IsAdmin: true, IsIRCRunning: false}))
	assert.Equal(t, 1, api.starts)

	require.True(t, svc.ToggleIRC(context.Background(), models.Session{IsAdmin: true, IsIRCRunning: true}))
	assert.Equal(t, 1, api.stops)
}

// Explicit start and stop honor the requested direction even when the
// observed session state already matches it.
func TestStartStopIRCExplicitDirection(t *testing.T) {
	api := &fakeAPI{}
	svc, _ := newService(api, nil)

	require.True(t, svc.StartIRC(context.Background(), models.Session{IsAdmin: true, IsIRCRunning: true}))
	assert.Equal(t, 1, api.starts)
	assert.Zero(t, api.stops)

	require.True(t, svc.StopIRC(context.Background(), models.Session{IsAdmin: true, IsIRCRunning: false}))
	assert.Equal(t, 1, api.stops)
	assert.Equal(t, 1, api.starts)
}

func TestStartIRCRequiresAdmin(t *testing.T) {
	api := &fakeAPI{}
	svc, rec := newService(api, nil)

	assert.False(t, svc.StartIRC(context.Background(), models.Session{}))
	assert.False(t, svc.StopIRC(context.Background(), models.Session{}))
	assert.Zero(t, api.starts)
	assert.Zero(t, api.stops)
	assert.Len(t, rec.failures, 2)
}

func TestLoginSurfacesBackendMessage(t *testing.T) {
	api := &fakeAPI{loginErr: &client.APIError{Status: 401, Message: "Invalid username or password"}}
	svc, rec := newService(api, nil)

	ok := svc.Login(context.Background(), "operator", "wrong")
	assert.False(t, ok)
	assert.Equal(t, []string{"Invalid username or password"}, rec.failures)

	api.loginErr = nil
	ok = svc.Login(context.Background(), "operator", "right")
	assert.True(t, ok)
	assert.Equal(t, []string{"Login Success"}, rec.successes)
}
