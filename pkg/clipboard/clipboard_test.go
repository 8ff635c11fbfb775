package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	require.True(t, m.Available())

	require.NoError(t, m.Write("a\tb\nc\td"))
	got, err := m.Read()
	require.NoError(t, err)
	assert.Equal(t, "a\tb\nc\td", got)
	assert.Equal(t, 1, m.Writes())
}

func TestUnavailable(t *testing.T) {
	var c Clipboard = Unavailable{}
	assert.False(t, c.Available())

	err := c.Write("x")
	assert.True(t, errors.Is(err, ErrUnavailable))

	_, err = c.Read()
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestSystemUnavailableWrite(t *testing.T) {
	c := &System{available: false}
	err := c.Write("x")
	assert.True(t, errors.Is(err, ErrUnavailable))

	_, err = c.Read()
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestNilSystem(t *testing.T) {
	var c *System
	assert.False(t, c.Available())
	assert.Error(t, c.Write("x"))
}
