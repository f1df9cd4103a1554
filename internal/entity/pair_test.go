package entity

import (
	"space-shooter/internal/component"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairRejectsSameIndex(t *testing.T) {
	xs := []int{1, 2, 3}
	a, b, ok := Pair(xs, 1, 1)
	assert.False(t, ok)
	assert.Nil(t, a)
	assert.Nil(t, b)
}

func TestPairRejectsOutOfRange(t *testing.T) {
	xs := []int{1, 2, 3}
	for _, tc := range []struct{ i, j int }{{0, 3}, {3, 0}, {5, 7}, {-1, 0}} {
		_, _, ok := Pair(xs, tc.i, tc.j)
		assert.False(t, ok, "pair (%d, %d)", tc.i, tc.j)
	}
	_, _, ok := Pair([]int(nil), 0, 1)
	assert.False(t, ok)
}

func TestPairGivesDisjointMutableAccess(t *testing.T) {
	enemies := []component.Enemy{{Health: 1}, {Health: 2}, {Health: 3}}
	for i := range enemies {
		for j := range enemies {
			a, b, ok := Pair(enemies, i, j)
			if i == j {
				assert.False(t, ok)
				continue
			}
			require.True(t, ok)
			assert.NotSame(t, a, b)
			assert.Same(t, &enemies[i], a)
			assert.Same(t, &enemies[j], b)
		}
	}

	a, b, ok := Pair(enemies, 0, 2)
	require.True(t, ok)
	a.Destroy()
	b.Destroy()
	assert.False(t, enemies[0].Alive())
	assert.True(t, enemies[1].Alive())
	assert.False(t, enemies[2].Alive())
}

func TestFilterKeepsOrder(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5, 6}
	xs = Filter(xs, func(v *int) bool { return *v%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, xs)
}

func TestFilterEmpty(t *testing.T) {
	xs := Filter([]int{}, func(*int) bool { return true })
	assert.Empty(t, xs)
}

func TestNewWorldStartsPlaying(t *testing.T) {
	w := NewWorld(component.Player{}, nil)
	assert.Equal(t, component.PhasePlaying, w.State.Phase)
	assert.Equal(t, 0, w.Counts()["enemy"])
}
