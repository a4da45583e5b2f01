package screen_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/ribgsilva/notes/business/v1/screen"
	store "github.com/ribgsilva/notes/persistence/v1/note"
	"github.com/ribgsilva/notes/platform/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingStorage records every call made to the wrapped storage.
type countingStorage struct {
	storage.Storage
	gets, sets int
	getErr     error
}

func (c *countingStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.Storage.Get(ctx, key)
}

func (c *countingStorage) Set(ctx context.Context, key string, value []byte) error {
	c.sets++
	return c.Storage.Set(ctx, key, value)
}

type app struct {
	storage *countingStorage
	core    *note.Core
	routes  []string
	list    *screen.ListView
	editor  *screen.Editor
}

func newApp(t *testing.T) *app {
	t.Helper()
	b, err := storage.OpenBlob(context.Background(), "mem://", time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	log := zap.NewNop().Sugar()
	a := &app{storage: &countingStorage{Storage: b}}
	a.core = note.NewCore(log, store.NewStore(log, a.storage))
	a.list = screen.NewListView(log, a.core)
	a.editor = screen.NewEditor(a.core, screen.NavigatorFunc(func(route string) {
		a.routes = append(a.routes, route)
	}))
	return a
}

func TestEditorSubmit(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)

	a.editor.Title = "Grocery List"
	a.editor.Subtitle = "weekend"
	a.editor.Content = "eggs"
	require.NoError(t, a.editor.SelectColor("#8bc34a"))

	created, err := a.editor.Submit(ctx)
	require.NoError(t, err)
	assert.NotZero(t, created.Id)
	assert.Equal(t, "#8bc34a", created.Color)
	assert.Equal(t, 1, a.storage.gets, "one read for the duplicate check")
	assert.Equal(t, 1, a.storage.sets, "one write to persist")

	assert.Equal(t, []string{screen.RouteHome}, a.routes)
	assert.Empty(t, a.editor.Title)
	assert.Empty(t, a.editor.Subtitle)
	assert.Empty(t, a.editor.Content)
	assert.Equal(t, note.DefaultColor, a.editor.Color)
}

func TestEditorSubmitFailureKeepsForm(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)

	a.editor.Title = "Grocery List"
	_, err := a.editor.Submit(ctx)
	assert.Equal(t, note.MsgMissingFields, note.UserMessage(err))
	assert.Equal(t, "Grocery List", a.editor.Title)
	assert.Empty(t, a.routes)
	assert.Zero(t, a.storage.sets)

	a.editor.Content = "eggs"
	_, err = a.editor.Submit(ctx)
	require.NoError(t, err)

	a.editor.Title = "Grocery List"
	a.editor.Content = "eggs"
	_, err = a.editor.Submit(ctx)
	assert.Equal(t, note.MsgDuplicate, note.UserMessage(err))
	assert.Equal(t, "eggs", a.editor.Content)
	assert.Len(t, a.routes, 1)

	assert.Error(t, a.editor.SelectColor("red"))
	assert.Equal(t, note.DefaultColor, a.editor.Color)
}

func TestEditorDiscard(t *testing.T) {
	a := newApp(t)

	a.editor.Title = "Grocery List"
	a.editor.Content = "eggs"
	require.NoError(t, a.editor.SelectColor("#e91e63"))
	a.editor.Discard()

	assert.Zero(t, a.storage.gets)
	assert.Zero(t, a.storage.sets)
	assert.Equal(t, []string{screen.RouteHome}, a.routes)
	assert.Empty(t, a.editor.Title)
	assert.Equal(t, note.DefaultColor, a.editor.Color)
}

func TestListViewFocusRefresh(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)

	require.NoError(t, a.list.Focus(ctx))
	assert.True(t, a.list.Empty())

	for _, title := range []string{"Grocery List", "Groceries", "Meeting Notes"} {
		a.editor.Title = title
		a.editor.Content = "x"
		_, err := a.editor.Submit(ctx)
		require.NoError(t, err)
	}
	assert.True(t, a.list.Empty(), "notes only show up after a refresh")

	require.NoError(t, a.list.Focus(ctx))
	assert.Len(t, a.list.Visible(), 3)

	a.list.SetQuery("GROC")
	visible := a.list.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "Grocery List", visible[0].Title)
	assert.Equal(t, "Groceries", visible[1].Title)

	a.list.SetQuery("zzz")
	assert.True(t, a.list.Empty())

	a.list.SetQuery("")
	assert.Len(t, a.list.Visible(), 3)
}

func TestListViewLoadFailureKeepsNotes(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)

	a.editor.Title = "Meeting Notes"
	a.editor.Content = "agenda"
	_, err := a.editor.Submit(ctx)
	require.NoError(t, err)
	require.NoError(t, a.list.Focus(ctx))

	a.storage.getErr = errors.New("unreachable")
	err = a.list.Focus(ctx)
	assert.Equal(t, note.MsgLoadFailed, note.UserMessage(err))
	assert.Len(t, a.list.Visible(), 1)
}
