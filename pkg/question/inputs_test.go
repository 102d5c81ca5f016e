package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputs_String(t *testing.T) {
	in := Inputs{
		Folder:   "/tmp/proj",
		Samples:  OptionItem{ID: "share-now"},
		EnvName:  []string{"a", "b"},
		EnvLocal: 42,
		AppName:  (*OptionItem)(nil),
		Solution: &OptionItem{ID: SolutionDefault},
	}

	assert.Equal(t, "/tmp/proj", in.String(Folder))
	assert.Equal(t, "share-now", in.String(Samples))
	assert.Equal(t, "a,b", in.String(EnvName))
	assert.Equal(t, "", in.String(EnvLocal))
	assert.Equal(t, "", in.String(AppName))
	assert.Equal(t, SolutionDefault, in.String(Solution))
	assert.Equal(t, "", in.String(EnvSideLoading))
}

func TestInputs_Has(t *testing.T) {
	in := Inputs{Folder: "", AppName: "App1"}

	assert.False(t, in.Has(Folder))
	assert.True(t, in.Has(AppName))
	assert.False(t, in.Has(Samples))
}

func TestInputs_Item(t *testing.T) {
	in := Inputs{Samples: OptionItem{ID: "faq-plus"}, Folder: "x"}

	item, ok := in.Item(Samples)
	assert.True(t, ok)
	assert.Equal(t, "faq-plus", item.ID)

	_, ok = in.Item(Folder)
	assert.False(t, ok)
}

func TestInputs_CloneIsIndependent(t *testing.T) {
	in := Inputs{Folder: "/a", EnvName: []string{"x"}}
	c := in.Clone()

	c[Folder] = "/b"
	c[EnvName].([]string)[0] = "y"
	c[AppName] = "new"

	assert.Equal(t, "/a", in.String(Folder))
	assert.Equal(t, "x", in.String(EnvName))
	assert.False(t, in.Has(AppName))
}
