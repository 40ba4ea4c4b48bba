package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quillbox/quillbox-server/internal/note"
)

func TestMemoryRepoCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	n, err := r.Create(ctx, &note.Note{Title: "groceries", Content: "milk", Color: "#fff9e6", Category: "general", Tags: []string{}})
	require.NoError(t, err)
	require.False(t, n.ID.IsZero())
	require.False(t, n.CreatedAt.IsZero())

	got, err := r.Get(ctx, n.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "milk", got.Content)

	list, err := r.List(ctx, ListQuery{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	title := "errands"
	got2, err := r.Update(ctx, n.ID.Hex(), UpdateFields{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "errands", got2.Title)
	require.Equal(t, "milk", got2.Content)

	err = r.Delete(ctx, n.ID.Hex())
	require.NoError(t, err)
	_, err = r.Get(ctx, n.ID.Hex())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepoUnknownID(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	_, err := r.Get(ctx, "64f000000000000000000000")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = r.Update(ctx, "64f000000000000000000000", UpdateFields{})
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, r.Delete(ctx, "64f000000000000000000000"), ErrNotFound)
}

func TestMemoryRepoListFilters(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	work, err := r.Create(ctx, &note.Note{Title: "standup", Content: "Agenda For Monday", Category: "work"})
	require.NoError(t, err)
	_, err = r.Create(ctx, &note.Note{Title: "recipes", Content: "pasta", Category: "cooking"})
	require.NoError(t, err)

	byCategory, err := r.List(ctx, ListQuery{Category: "work"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	require.Equal(t, work.ID, byCategory[0].ID)

	// search is a case-insensitive substring over title or content
	bySearch, err := r.List(ctx, ListQuery{Search: "agenda for"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	require.Equal(t, work.ID, bySearch[0].ID)

	none, err := r.List(ctx, ListQuery{Category: "work", Search: "pasta"})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestMemoryRepoSorting(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	first, err := r.Create(ctx, &note.Note{Title: "b first", Content: "x"})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	second, err := r.Create(ctx, &note.Note{Title: "a second", Content: "y"})
	require.NoError(t, err)

	newest, err := r.List(ctx, ListQuery{Sort: SortNewest})
	require.NoError(t, err)
	require.Equal(t, second.ID, newest[0].ID)

	byTitle, err := r.List(ctx, ListQuery{Sort: SortTitle})
	require.NoError(t, err)
	require.Equal(t, second.ID, byTitle[0].ID) // "a second" sorts first

	// touching the older note makes it the most recently updated
	time.Sleep(time.Millisecond)
	content := "x2"
	_, err = r.Update(ctx, first.ID.Hex(), UpdateFields{Content: &content})
	require.NoError(t, err)
	updated, err := r.List(ctx, ListQuery{Sort: SortUpdated})
	require.NoError(t, err)
	require.Equal(t, first.ID, updated[0].ID)
}

func TestMemoryRepoTrash(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	keep, err := r.Create(ctx, &note.Note{Title: "keep", Content: "x"})
	require.NoError(t, err)
	older, err := r.Create(ctx, &note.Note{Title: "older trash", Content: "y"})
	require.NoError(t, err)
	newer, err := r.Create(ctx, &note.Note{Title: "newer trash", Content: "z"})
	require.NoError(t, err)

	t0 := time.Now().UTC().Add(-time.Hour)
	t1 := time.Now().UTC()
	_, err = r.SetDeleted(ctx, older.ID.Hex(), true, &t0)
	require.NoError(t, err)
	_, err = r.SetDeleted(ctx, newer.ID.Hex(), true, &t1)
	require.NoError(t, err)

	active, err := r.List(ctx, ListQuery{})
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, keep.ID, active[0].ID)

	trash, err := r.ListDeleted(ctx)
	require.NoError(t, err)
	require.Len(t, trash, 2)
	require.Equal(t, newer.ID, trash[0].ID)
	require.Equal(t, older.ID, trash[1].ID)

	removed, err := r.DeleteAllDeleted(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), removed)

	_, err = r.Get(ctx, keep.ID.Hex())
	require.NoError(t, err)
	_, err = r.Get(ctx, newer.ID.Hex())
	require.ErrorIs(t, err, ErrNotFound)
}
