package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetOrCreate(t *testing.T) {
	store := NewStore(time.Hour, time.Hour)

	_, ok := store.Get("s1")
	assert.False(t, ok)

	sel := store.GetOrCreate("s1")
	require.NotNil(t, sel)
	sel.Add(salento)

	again, ok := store.Get("s1")
	require.True(t, ok)
	assert.Same(t, sel, again)
	assert.Same(t, sel, store.GetOrCreate("s1"))
	assert.Equal(t, 1, store.Count())
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	store := NewStore(time.Hour, time.Hour)

	store.GetOrCreate("a").Add(salento)
	store.GetOrCreate("b").Add(cocora)

	a, _ := store.Get("a")
	b, _ := store.Get("b")
	assert.Equal(t, []string{"Salento"}, a.Names())
	assert.Equal(t, []string{"Valle del Cocora"}, b.Names())
}

func TestStore_DeleteStopsNotifier(t *testing.T) {
	store := NewStore(time.Hour, time.Hour)
	sel := store.GetOrCreate("s1")
	sel.Add(salento)

	store.Delete("s1")

	_, ok := store.Get("s1")
	assert.False(t, ok)
	_, pending := sel.Notification()
	assert.False(t, pending)
}
