package stateset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPushKeepsSortedAndDeduplicates(t *testing.T) {
	s := New()

	assert.True(t, s.Push(5))
	assert.True(t, s.Push(1))
	assert.True(t, s.Push(3))
	assert.False(t, s.Push(3)) // duplicate

	require.Equal(t, []int{1, 3, 5}, s.Values())
	assert.Equal(t, 3, s.Len())
}

func TestSetContains(t *testing.T) {
	s := NewFrom([]int{4, 2, 7, 2})

	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(4))
	assert.True(t, s.Contains(7))
	assert.False(t, s.Contains(0))
	assert.Equal(t, 3, s.Len())
}

func TestSetSingleton(t *testing.T) {
	s := NewSingleton(9)
	assert.Equal(t, []int{9}, s.Values())
}

func TestUnionMergesAndDeduplicates(t *testing.T) {
	a := NewFrom([]int{1, 3, 5})
	b := NewFrom([]int{2, 3, 4})

	u := Union(a, b)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, u.Values())

	// originals untouched
	assert.Equal(t, []int{1, 3, 5}, a.Values())
	assert.Equal(t, []int{2, 3, 4}, b.Values())
}

func TestUnionWithEmpty(t *testing.T) {
	a := New()
	b := NewFrom([]int{1, 2})
	assert.Equal(t, []int{1, 2}, Union(a, b).Values())
	assert.Equal(t, []int{1, 2}, Union(b, a).Values())
}

func TestDisjoint(t *testing.T) {
	a := NewFrom([]int{1, 3, 5})
	b := NewFrom([]int{2, 4, 6})
	assert.True(t, Disjoint(a, b))

	c := NewFrom([]int{5, 6, 7})
	assert.False(t, Disjoint(a, c))
}

func TestDisjointEmptySets(t *testing.T) {
	assert.True(t, Disjoint(New(), New()))
	assert.True(t, Disjoint(New(), NewFrom([]int{1})))
}

func TestClearKeepsBacking(t *testing.T) {
	s := NewFrom([]int{1, 2, 3})
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.True(t, s.Push(9))
	assert.Equal(t, []int{9}, s.Values())
}

func TestClone(t *testing.T) {
	a := NewFrom([]int{1, 2, 3})
	b := a.Clone()
	b.Push(4)

	assert.Equal(t, []int{1, 2, 3}, a.Values())
	assert.Equal(t, []int{1, 2, 3, 4}, b.Values())
}

func TestStackPushPop(t *testing.T) {
	st := NewStack()
	assert.True(t, st.IsEmpty())

	st.Push(1)
	st.Push(2)
	st.Push(3)

	assert.Equal(t, 3, st.Len())
	assert.Equal(t, 3, st.Peek())

	v, ok := st.TryPop()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	assert.Equal(t, 2, st.Pop())
	assert.Equal(t, 1, st.Pop())
	assert.True(t, st.IsEmpty())

	_, ok = st.TryPop()
	assert.False(t, ok)
}

func TestStackFrom(t *testing.T) {
	st := NewStackFrom([]int{1, 2, 3})
	assert.Equal(t, 3, st.Len())
	assert.Equal(t, 3, st.Pop())
	assert.Equal(t, 2, st.Pop())
	assert.Equal(t, 1, st.Pop())
}
