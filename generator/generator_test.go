package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/expr-lang/expr/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4gshm/enumfields/annotation"
	"github.com/m4gshm/enumfields/model/union"
)

func Test_TypeReceiverVar(t *testing.T) {

	result := TypeReceiverVar("1asd")

	assert.Equal(t, "a", result)

	emptyResult := TypeReceiverVar("")

	assert.Equal(t, "r", emptyResult)

	splitResult := TypeReceiverVar("qw.erty")

	assert.Equal(t, "e", splitResult)

	splitEmpty := TypeReceiverVar("qw.")

	assert.Equal(t, "r", splitEmpty)
}

func Test_Naming_Defaults(t *testing.T) {
	naming := DefaultNaming()

	for mode, expected := range map[annotation.AccessMode]string{
		annotation.ReadOnly: "key",
		annotation.Mutable:  "key_mut",
		annotation.Owning:   "into_key",
	} {
		name, err := naming.Name(mode, "key", "Entry", "Key")
		require.NoError(t, err)
		assert.Equal(t, expected, name)
	}
}

func Test_Naming_Env(t *testing.T) {
	naming, err := NewNaming(map[annotation.AccessMode]string{annotation.Owning: `untitle(union) + title(field) + type`})
	require.NoError(t, err)

	name, err := naming.Name(annotation.Owning, "key", "Entry", "Key")
	require.NoError(t, err)
	assert.Equal(t, "entryKeyKey", name)
}

func Test_Naming_CompileError(t *testing.T) {
	_, err := NewNaming(map[annotation.AccessMode]string{annotation.Mutable: `field +`})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "mutable name template 'field +': "), err.Error())
	var exprErr *file.Error
	assert.True(t, errors.As(err, &exprErr))

	_, err = NewNaming(map[annotation.AccessMode]string{annotation.Mutable: `unknown_var`})
	assert.Error(t, err)
}

const expectedEntrySrc = `// Code generated by 'enumfields -type Entry'; DO NOT EDIT.

package shapes

import "time"

// key returns the key field of the Entry variant.
//
//nolint:all
func key(e Entry) Key {
	switch v := e.(type) {
	case *FirstEntry:
		return v.First.key
	case *SecondEntry:
		return v.key
	case *ThirdEntry:
		return v.Third.key
	}
	panic("Entry: unexpected variant")
}

// at returns the at field of the Entry variant.
//
//nolint:all
func at(e Entry) time.Time {
	switch v := e.(type) {
	case *FirstEntry:
		return v.First.at
	case *SecondEntry:
		return v.at
	case *ThirdEntry:
		return v.Third.at
	}
	panic("Entry: unexpected variant")
}
`

func newEntryGenerator(t *testing.T, buildTag string) *Generator {
	imports := map[string]union.Import{"time": {Path: "time"}, "strings": {Path: "strings"}}
	accessors, err := Synthesize("Entry", entryVariants, parse(t, "key: Key", "at: time.Time"), Options{Imports: imports})
	require.NoError(t, err)

	g := New("enumfields", []string{"-type", "Entry"}, "example/shapes", "shapes", buildTag)
	g.Doc = true
	g.Nolint = true
	g.AddImports(imports)
	g.AddAccessors(accessors...)
	return g
}

func Test_Generator_FormatSrc(t *testing.T) {
	g := newEntryGenerator(t, "")
	assert.Equal(t, 2, g.Len())

	src, err := g.FormatSrc()
	require.NoError(t, err)
	assert.Equal(t, expectedEntrySrc, string(src))
}

func Test_Generator_Deterministic(t *testing.T) {
	first, err := newEntryGenerator(t, "").FormatSrc()
	require.NoError(t, err)
	second, err := newEntryGenerator(t, "").FormatSrc()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func Test_Generator_DotImportedType(t *testing.T) {
	dotImported := map[string]union.Import{"Duration": {Path: "time"}}
	accessors, err := Synthesize("Entry", entryVariants, parse(t, "timeout: Duration"), Options{DotImported: dotImported})
	require.NoError(t, err)

	g := New("enumfields", []string{"-type", "Entry"}, "example/shapes", "shapes", "")
	g.AddAccessors(accessors...)
	src, err := g.FormatSrc()
	require.NoError(t, err)
	assert.Contains(t, string(src), "import \"time\"\n")
	assert.Contains(t, string(src), "func timeout(e Entry) time.Duration {\n")
}

func Test_Generator_BuildTag(t *testing.T) {
	src, err := newEntryGenerator(t, "!enumfields").FormatSrc()
	require.NoError(t, err)
	assert.Contains(t, string(src), "//go:build !enumfields\n")
	assert.Contains(t, string(src), "\npackage shapes\n")
}
