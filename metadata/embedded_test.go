package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestIsEmbedded(t *testing.T) {
	assert.NotEmpty(t, Manifest)
}

func TestLoad(t *testing.T) {
	pkg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "@microsoft/teamsapp-cli", pkg.Name)
	assert.NotEmpty(t, pkg.Version)
}

func TestParse(t *testing.T) {
	pkg, err := Parse([]byte(`{"name":"cli","version":"1.2.3","aiKey":"key"}`))
	require.NoError(t, err)
	assert.Equal(t, Package{Name: "cli", Version: "1.2.3", AIKey: "key"}, pkg)

	_, err = Parse([]byte(`{"name":"cli"}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{`))
	assert.Error(t, err)
}

func TestWithVersion(t *testing.T) {
	pkg := Package{Name: "cli", Version: "1.0.0"}

	assert.Equal(t, "2.0.0", pkg.WithVersion("2.0.0").Version)
	assert.Equal(t, "1.0.0", pkg.WithVersion("dev").Version)
	assert.Equal(t, "1.0.0", pkg.WithVersion("").Version)
	assert.Equal(t, "1.0.0", pkg.Version)
}
