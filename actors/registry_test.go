package actors

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/mapactors/config"
)

func TestFactoryCoversDemoScene(t *testing.T) {
	scene, err := config.LoadScene("")
	require.NoError(t, err)
	for _, o := range scene.Objects {
		_, ok := Lookup(o.Name)
		assert.True(t, ok, "no factory entry for %q", o.Name)
	}
}

func TestFactoryEntriesAreComplete(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names))
	assert.Len(t, names, len(factory))

	for _, n := range names {
		e, ok := Lookup(n)
		require.True(t, ok, n)
		assert.NotNil(t, e.New, n)
		assert.NotNil(t, e.RequestArchives, n)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("NoSuchObject")
	assert.False(t, ok)
}
