package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchemaCachesObjectIdentity(t *testing.T) {
	repo := NewRepository()

	first, err := repo.GetSchema("1.0.0")
	require.NoError(t, err)
	second, err := repo.GetSchema("1.0.0")
	require.NoError(t, err)

	// Same cache slot must return the exact same object, not a re-parse.
	assert.True(t, &first == &second || equalMapIdentity(first, second),
		"expected cache hit to return the same object reference")
}

// equalMapIdentity checks reference identity of two maps by mutating one and
// observing the other.
func equalMapIdentity(a, b map[string]any) bool {
	const probe = "__identity_probe__"
	a[probe] = true
	_, shared := b[probe]
	delete(a, probe)
	return shared
}

func TestClearForcesFreshParse(t *testing.T) {
	repo := NewRepository()

	before, err := repo.GetSchema("1.0.0")
	require.NoError(t, err)

	repo.Clear()

	after, err := repo.GetSchema("1.0.0")
	require.NoError(t, err)

	assert.False(t, equalMapIdentity(before, after), "Clear must drop the cached object")
	assert.Equal(t, before, after, "fresh parse must yield identical content")
}

func TestGetSchemaVersionAliases(t *testing.T) {
	repo := NewRepository()

	short, err := repo.GetSchema("1.0")
	require.NoError(t, err)
	full, err := repo.GetSchema("1.0.0")
	require.NoError(t, err)
	prefixed, err := repo.GetSchema("v1.0.0")
	require.NoError(t, err)

	assert.True(t, equalMapIdentity(short, full), "1.0 and 1.0.0 must share a cache slot")
	assert.True(t, equalMapIdentity(full, prefixed), "v1.0.0 and 1.0.0 must share a cache slot")
}

func TestGetSchemaDistinctVersionsDistinctSlots(t *testing.T) {
	repo := NewRepository()

	stable, err := repo.GetSchema("1.0.0")
	require.NoError(t, err)
	legacy, err := repo.GetSchema("0.2.2")
	require.NoError(t, err)

	assert.False(t, equalMapIdentity(stable, legacy))
	assert.NotEqual(t, stable["$id"], legacy["$id"])
}

func TestGetSchemaUnsupportedVersion(t *testing.T) {
	repo := NewRepository()

	tests := []struct {
		name    string
		version string
	}{
		{"unknown version", "999.0"},
		{"garbage version", "not-a-version"},
		{"empty version", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.GetSchema(tt.version)
			require.Error(t, err)

			var notFound *SchemaNotFoundError
			require.True(t, errors.As(err, &notFound))
			assert.Contains(t, err.Error(), "Unsupported schema version")
		})
	}
}

func TestCompileCachesCompiledSchema(t *testing.T) {
	repo := NewRepository()

	first, err := repo.Compile("1.0.0")
	require.NoError(t, err)
	second, err := repo.Compile("1.0.0")
	require.NoError(t, err)

	assert.Same(t, first, second)

	repo.Clear()
	third, err := repo.Compile("1.0.0")
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestCompileUnsupportedVersion(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Compile("999.0")
	var notFound *SchemaNotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestVersions(t *testing.T) {
	repo := NewRepository()

	versions := repo.Versions()
	require.Contains(t, versions, "1.0.0")
	require.Contains(t, versions, "0.2.2")
	assert.Equal(t, "0.2.2", versions[0], "versions must be sorted ascending")
}

func TestHas(t *testing.T) {
	repo := NewRepository()

	assert.True(t, repo.Has("1.0.0"))
	assert.True(t, repo.Has("1.0"))
	assert.False(t, repo.Has("999.0"))
	assert.False(t, repo.Has("bogus"))
}
