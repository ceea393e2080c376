package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/usuarios/internal/client/client"
	"github.com/dmitrijs2005/usuarios/internal/client/config"
	"github.com/dmitrijs2005/usuarios/internal/client/models"
	"github.com/dmitrijs2005/usuarios/internal/client/session"
	"github.com/dmitrijs2005/usuarios/internal/common"
	"github.com/dmitrijs2005/usuarios/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	users []models.User
	depts []models.Department
	pos   []models.Position

	usersErr    error
	failCreates int
	createErr   error
	pingErr     error

	listUsersCalls int
	created        []models.UserPayload
	updated        []models.UserPayload
	deleted        []string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) ListUsers(context.Context) ([]models.User, error) {
	f.listUsersCalls++
	return f.users, f.usersErr
}

func (f *fakeClient) ListDepartments(context.Context) ([]models.Department, error) {
	return f.depts, nil
}

func (f *fakeClient) ListPositions(context.Context) ([]models.Position, error) {
	return f.pos, nil
}

func (f *fakeClient) CreateUser(_ context.Context, p models.UserPayload) (models.User, error) {
	if f.failCreates > 0 {
		f.failCreates--
		return models.User{}, f.createErr
	}
	f.created = append(f.created, p)
	return models.User{}, nil
}

func (f *fakeClient) UpdateUser(_ context.Context, _ string, p models.UserPayload) (models.User, error) {
	f.updated = append(f.updated, p)
	return models.User{}, nil
}

func (f *fakeClient) DeleteUser(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeClient) Ping(context.Context) error { return f.pingErr }

func newFakeClient() *fakeClient {
	return &fakeClient{
		users: []models.User{{
			ID: "1", Username: "jdoe", FirstName: "John", LastName: "Doe",
			Department: &models.Department{ID: "d1", Name: "Eng", Active: true},
			Position:   &models.Position{ID: "p1", Name: "Dev", Active: true},
		}},
		depts: []models.Department{{ID: "d1", Name: "Eng", Active: true}, {ID: "d9", Name: "Old", Active: false}},
		pos:   []models.Position{{ID: "p1", Name: "Dev", Active: true}, {ID: "p2", Name: "Lead", Active: true}},
	}
}

// newTestApp returns an app that has already loaded its data and reads
// the given lines as terminal input.
func newTestApp(t *testing.T, fc *fakeClient, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}
	a := newApp(&config.Config{}, logging.Nop{}, fc, rdr(input), &out)
	a.users.Load(context.Background())
	fc.listUsersCalls = 0
	return a, &out
}

func TestApp_NewUser(t *testing.T) {
	fc := newFakeClient()
	a, out := newTestApp(t, fc,
		"asmith", "Ann", "", "Smith", "", // names
		"1", // Eng
		"2", // Lead
	)

	require.NoError(t, a.New(context.Background()))

	require.Len(t, fc.created, 1)
	p := fc.created[0]
	assert.Equal(t, "", p.ID)
	assert.Equal(t, "asmith", p.Username)
	assert.Equal(t, "d1", p.Department.ID)
	assert.Equal(t, "p2", p.Position.ID)
	assert.Equal(t, 1, fc.listUsersCalls)
	assert.Equal(t, session.Closed, a.users.SessionState())
	assert.Contains(t, out.String(), "User saved.")
	assert.NotContains(t, out.String(), "Old", "inactive departments are not offered")
}

func TestApp_NewUser_RetryKeepsDraft(t *testing.T) {
	fc := newFakeClient()
	fc.failCreates = 1
	fc.createErr = &client.APIError{Op: "create user", Status: 400, Message: "Username already exists", Kind: common.ErrValidation}

	a, out := newTestApp(t, fc,
		"asmith", "Ann", "", "Smith", "", "1", "2",
		"y",
		"", "", "", "", "", "", "", // keep everything
	)

	require.NoError(t, a.New(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Error: Username already exists")
	assert.Contains(t, s, "Username * [asmith]")
	require.Len(t, fc.created, 1)
	assert.Equal(t, "asmith", fc.created[0].Username)
	assert.Equal(t, "d1", fc.created[0].Department.ID)
	assert.Equal(t, "p2", fc.created[0].Position.ID)
}

func TestApp_NewUser_DeclineRetryClosesForm(t *testing.T) {
	fc := newFakeClient()
	a, out := newTestApp(t, fc,
		"", "Ann", "", "Smith", "", "1", "2", // username missing
		"n",
	)

	err := a.New(context.Background())
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, fc.created)
	assert.Equal(t, session.Closed, a.users.SessionState())
	assert.Contains(t, out.String(), "required fields missing")
	assert.Contains(t, out.String(), "Cancelled.")
}

func TestApp_NewUser_EOFCancels(t *testing.T) {
	fc := newFakeClient()
	a, _ := newTestApp(t, fc, "asmith")

	assert.Error(t, a.New(context.Background()))
	assert.Equal(t, session.Closed, a.users.SessionState())
	assert.Empty(t, fc.created)
}

func TestApp_NewUser_CancelledAtPromptClosesForm(t *testing.T) {
	fc := newFakeClient()
	pr, pw := io.Pipe()
	defer pw.Close()

	a := newApp(&config.Config{}, logging.Nop{}, fc, NewConsole(pr), io.Discard)
	a.users.Load(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.New(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("form kept waiting for input after cancel")
	}
	assert.Equal(t, session.Closed, a.users.SessionState())
	assert.Empty(t, fc.created)
}

func TestApp_EditUser(t *testing.T) {
	fc := newFakeClient()
	a, out := newTestApp(t, fc,
		"Johnny", "", "", "", // names; username is read-only
		"", // keep Eng
		"p2",
	)

	require.NoError(t, a.Edit(context.Background(), "1"))

	assert.Contains(t, out.String(), "Username: jdoe (read-only)")
	require.Len(t, fc.updated, 1)
	p := fc.updated[0]
	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "jdoe", p.Username)
	assert.Equal(t, "Johnny", p.FirstName)
	assert.Equal(t, "Doe", p.LastName)
	assert.Equal(t, "d1", p.Department.ID)
	assert.Equal(t, "p2", p.Position.ID)
}

func TestApp_EditUnknownUser(t *testing.T) {
	fc := newFakeClient()
	a, out := newTestApp(t, fc)

	assert.ErrorIs(t, a.Edit(context.Background(), "404"), common.ErrNotFound)
	assert.Contains(t, out.String(), "User not found: 404")
	assert.Equal(t, session.Closed, a.users.SessionState())
}

func TestApp_Delete(t *testing.T) {
	fc := newFakeClient()
	a, out := newTestApp(t, fc, "y")

	require.NoError(t, a.Delete(context.Background(), "1"))
	assert.Equal(t, []string{"1"}, fc.deleted)
	assert.Equal(t, 1, fc.listUsersCalls)
	assert.Contains(t, out.String(), "User deleted.")
}

func TestApp_DeleteDeclined(t *testing.T) {
	fc := newFakeClient()
	a, out := newTestApp(t, fc, "")

	require.NoError(t, a.Delete(context.Background(), "1"))
	assert.Empty(t, fc.deleted)
	assert.Equal(t, 0, fc.listUsersCalls)
	assert.Contains(t, out.String(), "Cancelled.")
}

func TestApp_FilterAndList(t *testing.T) {
	fc := newFakeClient()
	a, out := newTestApp(t, fc)
	ctx := context.Background()

	require.NoError(t, a.Filter(ctx, []string{"pos", "2"}))
	assert.Equal(t, "p2", a.users.Filter().PositionID)
	assert.Contains(t, out.String(), "Total records: 0")
	assert.Equal(t, "(pos=p2)", a.getStatus())

	out.Reset()
	require.NoError(t, a.Filter(ctx, []string{"pos", "-"}))
	assert.Contains(t, out.String(), "Total records: 1")

	require.NoError(t, a.Filter(ctx, []string{"dept", "d1"}))
	require.NoError(t, a.Filter(ctx, []string{"clear"}))
	assert.True(t, a.users.Filter().IsZero())

	assert.Error(t, a.Filter(ctx, []string{"bogus"}))
}

func TestApp_ListAfterFailedLoad(t *testing.T) {
	fc := newFakeClient()
	fc.usersErr = errors.New("connection refused")
	a, out := newTestApp(t, fc)

	assert.Error(t, a.List(context.Background()))
	assert.Contains(t, out.String(), "could not be loaded")
}

func TestApp_ReloadReportsFailure(t *testing.T) {
	fc := newFakeClient()
	a, out := newTestApp(t, fc)
	fc.usersErr = common.ErrTransport

	assert.ErrorIs(t, a.Reload(context.Background()), common.ErrTransport)
	assert.Contains(t, out.String(), "Error: could not load users")
}

func TestApp_Status(t *testing.T) {
	fc := newFakeClient()
	a, _ := newTestApp(t, fc)

	assert.Equal(t, "", a.getStatus())

	a.setMode(ModeOnline)
	a.users.SetDepartmentFilter("d1")
	assert.Equal(t, "(online dept=d1)", a.getStatus())
}

func TestApp_CheckOnline(t *testing.T) {
	fc := newFakeClient()
	a, _ := newTestApp(t, fc)
	ctx := context.Background()

	a.checkOnline(ctx)
	assert.Equal(t, ModeOnline, a.getMode())

	fc.pingErr = common.ErrTransport
	a.checkOnline(ctx)
	assert.Equal(t, ModeOffline, a.getMode())
}

func TestApp_WatcherStopsWithContext(t *testing.T) {
	fc := newFakeClient()
	a, _ := newTestApp(t, fc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return a.getMode() == ModeOnline }, time.Second, time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestApp_RunQuits(t *testing.T) {
	fc := newFakeClient()
	var out bytes.Buffer
	a := newApp(&config.Config{}, logging.Nop{}, fc, rdr("list\nquit\n"), &out)

	a.Run(context.Background())

	s := out.String()
	assert.Contains(t, s, "Loading...")
	assert.Contains(t, s, "jdoe")
	assert.Contains(t, s, "Bye!")
}
