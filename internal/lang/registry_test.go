package lang_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loclens/loclens/internal/lang"
)

func TestDetectByExtension(t *testing.T) {
	reg, err := lang.New()
	require.NoError(t, err)

	rs, ok := reg.Detect("main.go")
	require.True(t, ok)
	require.Equal(t, "Go", rs.Name)
}

func TestDetectByFilename(t *testing.T) {
	reg, err := lang.New()
	require.NoError(t, err)

	rs, ok := reg.Detect("CMakeLists.txt")
	require.True(t, ok)
	require.Equal(t, "CMake", rs.Name)
}

func TestDetectByDoubleSuffix(t *testing.T) {
	reg, err := lang.New()
	require.NoError(t, err)

	rs, ok := reg.Detect("Widget.g.cs")
	require.True(t, ok)
	require.Equal(t, "C# Generated", rs.Name)

	rs, ok = reg.Detect("Widget.designer.cs")
	require.True(t, ok)
	require.Equal(t, "C# Generated", rs.Name)
}

func TestDetectNoMatch(t *testing.T) {
	reg, err := lang.New()
	require.NoError(t, err)

	_, ok := reg.Detect("README")
	require.False(t, ok)
}

// A user-defined extension mapping must win over a built-in filename
// mapping for the same path, per §4.1 rule 1 outranking rule 2.
func TestDetectUserExtensionOutranksBuiltinFilename(t *testing.T) {
	reg, err := lang.New()
	require.NoError(t, err)

	rs, ok := reg.Detect("CMakeLists.txt")
	require.True(t, ok)
	require.Equal(t, "CMake", rs.Name)

	custom := `
languages:
  - name: ProjectConfig
    extensions: [txt]
    string_delimiters: []
`
	require.NoError(t, reg.Import([]byte(custom)))

	rs, ok = reg.Detect("CMakeLists.txt")
	require.True(t, ok)
	require.Equal(t, "ProjectConfig", rs.Name)
}

func TestDetectUserExtensionOutranksBuiltinExtension(t *testing.T) {
	reg, err := lang.New()
	require.NoError(t, err)

	rs, ok := reg.Detect("main.go")
	require.True(t, ok)
	require.Equal(t, "Go", rs.Name)

	custom := `
languages:
  - name: GoTemplate
    extensions: [go]
    string_delimiters: []
`
	require.NoError(t, reg.Import([]byte(custom)))

	rs, ok = reg.Detect("main.go")
	require.True(t, ok)
	require.Equal(t, "GoTemplate", rs.Name)
}

func TestImportRejectsSecondCall(t *testing.T) {
	reg, err := lang.New()
	require.NoError(t, err)

	doc := "languages:\n  - name: X\n    extensions: [xx]\n"
	require.NoError(t, reg.Import([]byte(doc)))
	require.Error(t, reg.Import([]byte(doc)))
}

func TestGetCIIsCaseInsensitive(t *testing.T) {
	reg, err := lang.New()
	require.NoError(t, err)

	rs, ok := reg.GetCI("gO")
	require.True(t, ok)
	require.Equal(t, "Go", rs.Name)
}

func TestLanguagesAndExtensionsNonEmpty(t *testing.T) {
	reg, err := lang.New()
	require.NoError(t, err)

	require.NotEmpty(t, reg.Languages())
	require.NotEmpty(t, reg.Extensions())
}
