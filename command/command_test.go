package command

import (
	"bytes"
	"errors"
	"flag"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4gshm/enumfields/generator"
	"github.com/m4gshm/enumfields/logger"
	"github.com/m4gshm/enumfields/model/util"
	"github.com/m4gshm/enumfields/params"
)

func init() {
	logger.Init(false)
}

//enumfields:field name: string
//enumfields:field mut_only count as countRef: int
type testCmdUnion interface{ isTestCmdUnion() }

type testCmdA struct {
	name  string
	count int
}

func (*testCmdA) isTestCmdUnion() {}

type testCmdBase struct {
	name  string
	count int
}

type testCmdB struct{ testCmdBase }

func (*testCmdB) isTestCmdUnion() {}

//enumfields:field mut key as k: string
type testCmdBadSyntax interface{ isTestCmdBadSyntax() }

type testCmdBadSyntaxImpl struct {
	key string
	x   int
}

func (*testCmdBadSyntaxImpl) isTestCmdBadSyntax() {}

type testCmdNoAnnotations interface{ isTestCmdNoAnnotations() }

type testCmdNoAnnotationsImpl struct{ key, value string }

func (*testCmdNoAnnotationsImpl) isTestCmdNoAnnotations() {}

func newContext(t *testing.T, args ...string) (*Context, *bytes.Buffer) {
	_, filename, _, _ := runtime.Caller(0)

	flagSet := flag.NewFlagSet(params.Name, flag.ContinueOnError)
	config := params.NewConfig(flagSet)
	require.NoError(t, flagSet.Parse(args))

	fileSet := token.NewFileSet()
	pkgs, err := util.ExtractPackages(fileSet, nil, filename)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &Context{Config: config, FileSet: fileSet, Packages: pkgs, Args: args, Out: out}, out
}

func run(t *testing.T, name string, context *Context, args ...string) error {
	cmd := Get(name)
	require.NotNil(t, cmd)
	_, err := cmd.Parse(args)
	require.NoError(t, err)
	return cmd.Run(context)
}

func Test_Get(t *testing.T) {
	assert.Equal(t, []string{"accessors", "check"}, Supported())
	assert.Equal(t, Default, Get(Default).Name())
	assert.Nil(t, Get("unknown"))
}

func Test_Check(t *testing.T) {
	context, out := newContext(t, "-type", "testCmdUnion")

	require.NoError(t, run(t, "check", context))
	assert.Equal(t, "func name(t testCmdUnion) string\nfunc countRef(t testCmdUnion) *int\n", out.String())
}

func Test_Check_NotAllowedMode(t *testing.T) {
	context, _ := newContext(t, "-type", "testCmdUnion")

	err := run(t, "check", context, "-allow", "ref")
	require.Error(t, err)

	var ruleErr *generator.Error
	require.True(t, errors.As(err, &ruleErr))
	assert.Equal(t, generator.RuleModeNotAllowed, ruleErr.Rule)
}

func Test_Check_SyntaxErrorPosition(t *testing.T) {
	context, _ := newContext(t, "-type", "testCmdBadSyntax")

	err := run(t, "check", context)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command_test.go:")
	assert.Contains(t, err.Error(), ":28: expected ':', found 'as'")
}

func Test_Check_NoAnnotations(t *testing.T) {
	context, _ := newContext(t, "-type", "testCmdNoAnnotations")

	err := run(t, "check", context)
	var ruleErr *generator.Error
	require.True(t, errors.As(err, &ruleErr))
	assert.Equal(t, generator.RuleNoAnnotations, ruleErr.Rule)
}

func Test_Check_TypeNotFound(t *testing.T) {
	context, _ := newContext(t, "-type", "testCmdMissing")

	err := run(t, "check", context)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type not found")
}

func Test_Accessors(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "union_enumfields.go")
	context, _ := newContext(t, "-type", "testCmdUnion", "-out", outFile)

	require.NoError(t, run(t, "accessors", context, "-doc"))

	src, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(src), "// Code generated by 'enumfields -type testCmdUnion -out "+outFile+"'; DO NOT EDIT.\n")
	assert.Contains(t, string(src), "\npackage command\n")
	assert.Contains(t, string(src), `// countRef returns a pointer to the count field of the testCmdUnion variant.
func countRef(t testCmdUnion) *int {
	switch v := t.(type) {
	case *testCmdA:
		return &v.count
	case *testCmdB:
		return &v.testCmdBase.count
	}
	panic("testCmdUnion: unexpected variant")
}
`)
}

func Test_Accessors_ReproducesExample(t *testing.T) {
	for _, example := range []struct {
		typ, generated string
		args           []string
	}{
		{"Entry", "entry_enumfields.go", []string{"-type", "Entry", "-outBuildTag", "!enumfields", "accessors", "-doc"}},
		{"Token", "token_enumfields.go", []string{"-type", "Token", "-outBuildTag", "!enumfields"}},
	} {
		t.Run(example.typ, func(t *testing.T) {
			const dir = "../examples/shapes"
			outFile := filepath.Join(t.TempDir(), example.generated)

			flagSet := flag.NewFlagSet(params.Name, flag.ContinueOnError)
			config := params.NewConfig(flagSet)
			require.NoError(t, flagSet.Parse(example.args))
			*config.Output = outFile

			fileSet := token.NewFileSet()
			pkgs, err := util.ExtractPackages(fileSet, *config.BuildTags, dir)
			require.NoError(t, err)

			cmdArgs := flagSet.Args()
			if len(cmdArgs) > 0 {
				cmdArgs = cmdArgs[1:]
			}
			context := &Context{Config: config, FileSet: fileSet, Packages: pkgs, Args: example.args, Out: &bytes.Buffer{}}
			require.NoError(t, run(t, Default, context, cmdArgs...))

			expected, err := os.ReadFile(filepath.Join(dir, example.generated))
			require.NoError(t, err)
			actual, err := os.ReadFile(outFile)
			require.NoError(t, err)
			assert.Equal(t, string(expected), string(actual))
		})
	}
}
