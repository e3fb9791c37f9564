package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type wizardState struct {
	Step int
	Base string
}

func TestSessionCache_SetAndGet(t *testing.T) {
	c, err := NewSessionCache[wizardState](128, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	c.Set(42, wizardState{Step: 2, Base: "BTC"})

	got, ok := c.Get(42)
	require.True(t, ok)
	require.Equal(t, wizardState{Step: 2, Base: "BTC"}, got)
}

func TestSessionCache_GetMissWhenEmpty(t *testing.T) {
	c, err := NewSessionCache[wizardState](64, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	got, ok := c.Get(1)
	require.False(t, ok)
	require.Equal(t, wizardState{}, got)
}

func TestSessionCache_DeleteEvictsOnlyThatUser(t *testing.T) {
	c, err := NewSessionCache[wizardState](256, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	c.Set(1, wizardState{Step: 1})
	c.Set(2, wizardState{Step: 3})

	c.Delete(1)

	_, ok := c.Get(1)
	require.False(t, ok)
	got, ok := c.Get(2)
	require.True(t, ok)
	require.Equal(t, 3, got.Step)
}

func TestSessionCache_Expires(t *testing.T) {
	c, err := NewSessionCache[wizardState](64, 50*time.Millisecond)
	require.NoError(t, err)
	defer c.Close()

	c.Set(7, wizardState{Step: 1})

	require.Eventually(t, func() bool {
		_, ok := c.Get(7)
		return !ok
	}, 2*time.Second, 20*time.Millisecond)
}
