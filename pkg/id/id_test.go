package id

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorMonotonic(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := NewGenerator(func() time.Time { return fixed })

	ids := make([]string, 50)
	for i := range ids {
		s, err := g.New()
		require.NoError(t, err)
		assert.Len(t, s, 26)
		ids[i] = s
	}

	assert.True(t, sort.StringsAreSorted(ids))
}

func TestTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 1, 12, 30, 15, 250*int(time.Millisecond), time.UTC)
	g := NewGenerator(func() time.Time { return at })

	s, err := g.New()
	require.NoError(t, err)

	got, err := Time(s)
	require.NoError(t, err)
	assert.True(t, got.Equal(at), "got %s", got)

	_, err = Time("not-a-ulid")
	assert.Error(t, err)
}
