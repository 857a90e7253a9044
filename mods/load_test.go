package mods

import (
	"os"
	"path/filepath"
	"testing"

	"bindcore/common"
	"bindcore/deps"
	"bindcore/logging"
	"bindcore/typing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, common.ManifestFileName), []byte(contents), 0o644))
	return dir
}

const demoManifest = `
[module]
name = "demo"
bindcore-version = "0.1.0"
loglevel = "error"

[[apis]]
name = "ns::Widget"
kind = "record"
types = ["std_string", "i32", "ns::Part"]
deps = ["ns::Base"]

[[apis]]
name = "ns::Part"
kind = "record"
types = ["std_unique_ptr"]

[[apis]]
name = "Widget_resize"
kind = "function"
types = ["&mut ns::Widget", "u32"]
`

func TestLoadModule(t *testing.T) {
	logging.Initialize("silent")
	dir := writeManifest(t, demoManifest)

	mod, err := LoadModule(dir)
	require.NoError(t, err)

	assert.Equal(t, "demo", mod.Name)
	assert.Equal(t, "error", mod.LogLevel)
	assert.Equal(t, common.GenerateIDFromPath(mod.ModuleRoot), mod.ID)
	require.Len(t, mod.Apis, 3)

	widget := mod.Apis[0]
	assert.Equal(t, deps.QualifiedName("ns::Widget"), widget.Name())
	assert.Equal(t, deps.ApiKindRecord, widget.Kind)
	assert.Equal(t, []deps.QualifiedName{"ns::Base", "ns::Part"}, widget.Deps())

	// dead names are normalized on the way in
	assert.Equal(t,
		[]typing.TypeName{typing.NewTypeName("CxxString"), typing.NewTypeName("i32"), typing.NewTypeName("Part")},
		widget.TypeNames(),
	)
	assert.Equal(t, []typing.TypeName{typing.NewTypeName("UniquePtr")}, mod.Apis[1].TypeNames())

	assert.Equal(t, deps.ApiKindFunction, mod.Apis[2].Kind)
	assert.Equal(t, []deps.QualifiedName{"ns::Widget"}, mod.Apis[2].Deps())
	assert.True(t, logging.ShouldProceed())
}

func TestLoadModuleErrors(t *testing.T) {
	testCases := []struct {
		name     string
		manifest string
		errMsg   string
	}{
		{
			name:     "missing module table",
			manifest: "[[apis]]\nname = \"a\"\nkind = \"record\"\n",
			errMsg:   "missing [module] table",
		},
		{
			name:     "missing name",
			manifest: "[module]\nbindcore-version = \"0.1.0\"\n",
			errMsg:   "missing module name",
		},
		{
			name:     "invalid name",
			manifest: "[module]\nname = \"not valid\"\n",
			errMsg:   "module name must be a valid identifier",
		},
		{
			name:     "unknown kind",
			manifest: "[module]\nname = \"demo\"\n[[apis]]\nname = \"a\"\nkind = \"macro\"\n",
			errMsg:   "API `a` has unknown kind `macro` in module demo",
		},
		{
			name:     "bad api name",
			manifest: "[module]\nname = \"demo\"\n[[apis]]\nname = \"ns::\"\nkind = \"record\"\n",
			errMsg:   "`ns::` is not a valid qualified name",
		},
		{
			name:     "bad type",
			manifest: "[module]\nname = \"demo\"\n[[apis]]\nname = \"f\"\nkind = \"function\"\ntypes = [\"*i8\"]\n",
			errMsg:   "pointer type `*i8` must be `*const` or `*mut`",
		},
		{
			name:     "duplicate api",
			manifest: "[module]\nname = \"demo\"\n[[apis]]\nname = \"a\"\nkind = \"record\"\n[[apis]]\nname = \"a\"\nkind = \"enum\"\n",
			errMsg:   "API `a` is declared multiple times in module demo",
		},
		{
			name:     "malformed toml",
			manifest: "[module\nname = \"demo\"\n",
			errMsg:   "error parsing manifest",
		},
	}

	logging.Initialize("silent")
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadModule(writeManifest(t, tc.manifest))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLoadModuleMissingManifest(t *testing.T) {
	_, err := LoadModule(t.TempDir())
	assert.True(t, os.IsNotExist(err))
}

func TestVersionMismatchIsOnlyAWarning(t *testing.T) {
	logging.Initialize("silent")

	mod, err := LoadModule(writeManifest(t, "[module]\nname = \"old\"\nbindcore-version = \"0.0.1\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "old", mod.Name)
	assert.Empty(t, mod.Apis)
	assert.True(t, logging.ShouldProceed())
}

func TestInitModule(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitModule("fresh", dir))

	mod, err := LoadModule(dir)
	require.NoError(t, err)
	assert.Equal(t, "fresh", mod.Name)
	assert.Empty(t, mod.Apis)

	assert.EqualError(t, InitModule("fresh", dir), "manifest file already exists")
	assert.EqualError(t, InitModule("not valid", t.TempDir()), "module name must be a valid identifier")
}
