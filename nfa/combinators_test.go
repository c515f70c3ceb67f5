package nfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sigma = []byte("ab")

func TestCharAcceptsExactlyOneSymbol(t *testing.T) {
	a, err := Char('a', sigma)
	require.NoError(t, err)

	assert.True(t, a.Recognize("a"))
	assert.False(t, a.Recognize(""))
	assert.False(t, a.Recognize("b"))
	assert.False(t, a.Recognize("aa"))
}

func TestUnion(t *testing.T) {
	a, err := Char('a', sigma)
	require.NoError(t, err)
	b, err := Char('b', sigma)
	require.NoError(t, err)

	u, err := Union(a, b)
	require.NoError(t, err)

	assert.True(t, u.Recognize("a"))
	assert.True(t, u.Recognize("b"))
	assert.False(t, u.Recognize("ab"))
	assert.False(t, u.Recognize(""))
}

func TestConcat(t *testing.T) {
	a, err := Char('a', sigma)
	require.NoError(t, err)
	b, err := Char('b', sigma)
	require.NoError(t, err)

	c, err := Concat(a, b)
	require.NoError(t, err)

	assert.True(t, c.Recognize("ab"))
	assert.False(t, c.Recognize("a"))
	assert.False(t, c.Recognize("ba"))
	assert.False(t, c.Recognize(""))
}

func TestKleeneStar(t *testing.T) {
	a, err := Char('a', sigma)
	require.NoError(t, err)

	k, err := Kleene(a)
	require.NoError(t, err)

	assert.True(t, k.Recognize(""))
	assert.True(t, k.Recognize("a"))
	assert.True(t, k.Recognize("aaaa"))
	assert.False(t, k.Recognize("b"))
	assert.False(t, k.Recognize("ab"))
}

func TestKleeneIsIdempotent(t *testing.T) {
	a, err := Char('a', sigma)
	require.NoError(t, err)

	k1, err := Kleene(a)
	require.NoError(t, err)
	k2, err := Kleene(k1)
	require.NoError(t, err)

	for _, s := range []string{"", "a", "aaa"} {
		assert.Equal(t, k1.Recognize(s), k2.Recognize(s), "mismatch for %q", s)
	}
}

func TestUnionOfKleeneStars(t *testing.T) {
	// (a+b)*
	a, err := Char('a', sigma)
	require.NoError(t, err)
	b, err := Char('b', sigma)
	require.NoError(t, err)
	u, err := Union(a, b)
	require.NoError(t, err)
	k, err := Kleene(u)
	require.NoError(t, err)

	assert.True(t, k.Recognize(""))
	assert.True(t, k.Recognize("ab"))
	assert.True(t, k.Recognize("abba"))
	assert.False(t, k.Recognize("abc"))
}

func TestKleeneOfConcat(t *testing.T) {
	// (a.b)*
	a, err := Char('a', sigma)
	require.NoError(t, err)
	b, err := Char('b', sigma)
	require.NoError(t, err)
	c, err := Concat(a, b)
	require.NoError(t, err)
	k, err := Kleene(c)
	require.NoError(t, err)

	assert.True(t, k.Recognize(""))
	assert.True(t, k.Recognize("ab"))
	assert.True(t, k.Recognize("abab"))
	assert.False(t, k.Recognize("a"))
	assert.False(t, k.Recognize("aba"))
}

func TestUnionRejectsMismatchedAlphabets(t *testing.T) {
	a, err := Char('a', []byte("ab"))
	require.NoError(t, err)
	c, err := Char('c', []byte("abc"))
	require.NoError(t, err)

	_, err = Union(a, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlphabetMismatch)
}

func TestConcatRejectsMismatchedAlphabets(t *testing.T) {
	a, err := Char('a', []byte("ab"))
	require.NoError(t, err)
	c, err := Char('c', []byte("abc"))
	require.NoError(t, err)

	_, err = Concat(a, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlphabetMismatch)
}

func TestUnionThenConcat(t *testing.T) {
	// (a+b).c
	a, err := Char('a', []byte("abc"))
	require.NoError(t, err)
	b, err := Char('b', []byte("abc"))
	require.NoError(t, err)
	c, err := Char('c', []byte("abc"))
	require.NoError(t, err)

	u, err := Union(a, b)
	require.NoError(t, err)
	r, err := Concat(u, c)
	require.NoError(t, err)

	assert.True(t, r.Recognize("ac"))
	assert.True(t, r.Recognize("bc"))
	assert.False(t, r.Recognize("c"))
	assert.False(t, r.Recognize("abc"))
}
