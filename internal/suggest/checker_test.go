package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saikrishna5339/Auto-text-corrector/pkg/options"
)

func TestCheckerSuggest(t *testing.T) {
	c, err := NewChecker([]string{"hello", "world"})
	require.NoError(t, err)

	got, ok := c.Suggest("hello")
	assert.True(t, ok)
	assert.Equal(t, "hello", got)

	got, ok = c.Suggest("helo")
	assert.True(t, ok)
	assert.Equal(t, "hello", got)

	_, ok = c.Suggest("qqqqqqq")
	assert.False(t, ok)
}

func TestCheckerAdd(t *testing.T) {
	c, err := NewChecker(nil, options.WithMaxErrors(1))
	require.NoError(t, err)

	_, ok := c.Suggest("wrld")
	assert.False(t, ok)

	c.Add("world")
	got, ok := c.Suggest("wrld")
	assert.True(t, ok)
	assert.Equal(t, "world", got)
}
