package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopledger/internal/core/apperror"
	"shopledger/internal/core/entity"
	"shopledger/internal/core/id"
	"shopledger/internal/infrastructure/storage/memory"
)

type widget struct {
	entity.BaseEntity
	Name string `json:"name"`
}

func newWidget(name string) widget {
	return widget{BaseEntity: entity.NewBaseEntity(time.Now().UTC()), Name: name}
}

func TestCollection_AddKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	c := NewCollection[widget]("widgets", store)

	a, b, d := newWidget("a"), newWidget("b"), newWidget("d")
	require.NoError(t, c.Add(ctx, a))
	require.NoError(t, c.Add(ctx, b))
	require.NoError(t, c.Add(ctx, d))

	items := c.List()
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a", "b", "d"}, []string{items[0].Name, items[1].Name, items[2].Name})
	assert.Equal(t, 3, store.SaveCount("widgets"))
}

func TestCollection_UpdateAndDeleteMissingAreNoOps(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	c := NewCollection[widget]("widgets", store)
	require.NoError(t, c.Add(ctx, newWidget("a")))

	updated, err := c.Update(ctx, id.New(), func(w widget) widget { w.Name = "x"; return w })
	require.NoError(t, err)
	assert.False(t, updated)

	deleted, err := c.Delete(ctx, id.New())
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.Equal(t, 1, store.SaveCount("widgets"), "no-ops must not write")
	assert.Equal(t, "a", c.List()[0].Name)
}

func TestCollection_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[widget]("widgets", memory.New())
	a, b := newWidget("a"), newWidget("b")
	require.NoError(t, c.Add(ctx, a))
	require.NoError(t, c.Add(ctx, b))

	updated, err := c.Update(ctx, a.ID, func(w widget) widget { w.Name = "a2"; return w })
	require.NoError(t, err)
	assert.True(t, updated)

	got, ok := c.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, "a2", got.Name)

	deleted, err := c.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, ok = c.Get(a.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestCollection_LoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	fresh := NewCollection[widget]("widgets", store)
	found, err := fresh.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, fresh.List())

	w := newWidget("persisted")
	require.NoError(t, fresh.Add(ctx, w))

	reopened := NewCollection[widget]("widgets", store)
	found, err = reopened.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)

	got, ok := reopened.Get(w.ID)
	require.True(t, ok)
	assert.Equal(t, "persisted", got.Name)
	assert.True(t, w.CreatedAt.Equal(got.CreatedAt))
}

func TestCollection_FailedSaveKeepsPreviousState(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	c := NewCollection[widget]("widgets", store)
	require.NoError(t, c.Add(ctx, newWidget("a")))

	store.FailSaves("widgets", errors.New("disk full"))
	err := c.Add(ctx, newWidget("b"))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeStorage, appErr.Code)
	assert.Equal(t, 1, c.Len())
}
