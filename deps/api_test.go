package deps

import (
	"testing"

	"bindcore/typing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) typing.TypeExpr {
	t.Helper()

	typ, err := typing.ParseTypeExpr(src)
	require.NoError(t, err)
	return typ
}

func TestQualifiedName(t *testing.T) {
	qn := NewQualifiedNameFromCppName("outer::inner::Widget")
	assert.Equal(t, "Widget", qn.Ident())
	assert.Equal(t, []string{"outer", "inner"}, qn.Namespace())
	assert.Equal(t, "outer::inner::Widget", qn.String())

	top := NewQualifiedNameFromCppName("Widget")
	assert.Equal(t, "Widget", top.Ident())
	assert.Empty(t, top.Namespace())
}

func TestApiDepsSkipKnownTypes(t *testing.T) {
	api := NewApi(
		NewQualifiedNameFromCppName("ns::Widget"),
		ApiKindRecord,
		[]typing.TypeExpr{
			mustParse(t, "std_string"),
			mustParse(t, "i32"),
			mustParse(t, "&mut ns::Base"),
			mustParse(t, "[ns::Part]"),
			mustParse(t, "*const ns::Base"),
		},
		[]QualifiedName{"ns::Registry", "ns::Base"},
	)

	assert.Equal(t, []QualifiedName{"ns::Registry", "ns::Base", "ns::Part"}, api.Deps())
	assert.Equal(t, "record", api.KindName())
}

func TestApiTypeNamesAreCanonical(t *testing.T) {
	api := NewApi(
		NewQualifiedNameFromCppName("make_widget"),
		ApiKindFunction,
		[]typing.TypeExpr{
			mustParse(t, "std_string"),
			mustParse(t, "&CxxString"),
			mustParse(t, "std_unique_ptr"),
			mustParse(t, "u8"),
		},
		nil,
	)

	assert.Equal(t,
		[]typing.TypeName{typing.NewTypeName("CxxString"), typing.NewTypeName("UniquePtr"), typing.NewTypeName("u8")},
		api.TypeNames(),
	)
	assert.Empty(t, api.Deps())
}

func TestApisOrderByReferencedTypes(t *testing.T) {
	widget := NewApi("ns::Widget", ApiKindRecord, []typing.TypeExpr{mustParse(t, "ns::Part")}, nil)
	part := NewApi("ns::Part", ApiKindRecord, []typing.TypeExpr{mustParse(t, "u32")}, nil)

	ordered, err := DepthFirst([]*Api{widget, part}).Collect()
	require.NoError(t, err)
	assert.Equal(t, []*Api{part, widget}, ordered)
}

func TestApiKindByName(t *testing.T) {
	kind, ok := ApiKindByName("function")
	require.True(t, ok)
	assert.Equal(t, ApiKindFunction, kind)

	_, ok = ApiKindByName("macro")
	assert.False(t, ok)
}
