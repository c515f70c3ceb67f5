package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample1NFA = `5
1
0
2
3 5
ab
0 & 1
0 & 4
1 a 2
2 a 3
3 a 3
4 b 5
5 b 5
`

func TestLoadNFA(t *testing.T) {
	n, err := LoadNFA(strings.NewReader(sample1NFA))
	require.NoError(t, err)

	assert.False(t, n.Recognize(""))
	assert.False(t, n.Recognize("a"))
	assert.True(t, n.Recognize("aa"))
	assert.True(t, n.Recognize("b"))
	assert.False(t, n.Recognize("ab"))
}

func TestLoadNFACRLF(t *testing.T) {
	crlf := strings.ReplaceAll(sample1NFA, "\n", "\r\n")
	n, err := LoadNFA(strings.NewReader(crlf))
	require.NoError(t, err)
	assert.True(t, n.Recognize("aa"))
}

func TestLoadNFARoundTrip(t *testing.T) {
	n, err := LoadNFA(strings.NewReader(sample1NFA))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteNFA(&buf, n))

	n2, err := LoadNFA(strings.NewReader(buf.String()))
	require.NoError(t, err)

	for _, s := range []string{"", "a", "aa", "b", "bb", "ab", "c"} {
		assert.Equal(t, n.Recognize(s), n2.Recognize(s), "mismatch for %q", s)
	}
}

func TestLoadNFATruncatedFile(t *testing.T) {
	_, err := LoadNFA(strings.NewReader("5\n1\n0\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestLoadNFABadInteger(t *testing.T) {
	_, err := LoadNFA(strings.NewReader("not-a-number\n"))
	require.Error(t, err)
}

const sample3DFA = `1
0
1
0
01
0 0 0
0 1 1
1 0 0
1 1 1
`

func TestLoadDFADivisibleByTwo(t *testing.T) {
	d, err := LoadDFA(strings.NewReader(sample3DFA))
	require.NoError(t, err)

	assert.True(t, d.Recognize(""))
	assert.True(t, d.Recognize("0"))
	assert.False(t, d.Recognize("1"))
	assert.True(t, d.Recognize("00"))
	assert.True(t, d.Recognize("10"))
	assert.False(t, d.Recognize("01"))
	assert.False(t, d.Recognize("101"))
	assert.True(t, d.Recognize("1101010"))
}

func TestLoadDFARejectsOutOfRangeInitialState(t *testing.T) {
	bad := "1\n5\n1\n0\nab\n"
	_, err := LoadDFA(strings.NewReader(bad))
	require.Error(t, err)
}

func TestLoadDFARoundTrip(t *testing.T) {
	d, err := LoadDFA(strings.NewReader(sample3DFA))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteDFA(&buf, d))

	d2, err := LoadDFA(strings.NewReader(buf.String()))
	require.NoError(t, err)

	for _, s := range []string{"", "0", "1", "00", "10", "1101010"} {
		assert.Equal(t, d.Recognize(s), d2.Recognize(s), "mismatch for %q", s)
	}
}
