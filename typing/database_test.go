package typing

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInts(t *testing.T) {
	assert.Equal(t, "int8_t", NewTypeName("i8").CppName())
	assert.Equal(t, "uint64_t", NewTypeName("u64").CppName())

	for _, bits := range []string{"8", "16", "32", "64"} {
		assert.Equal(t, "int"+bits+"_t", NewTypeName("i"+bits).CppName())
		assert.Equal(t, "uint"+bits+"_t", NewTypeName("u"+bits).CppName())
	}
}

func TestDeadNamesRoundTrip(t *testing.T) {
	testCases := []struct {
		deadName  string
		canonical string
		cppName   string
	}{
		{"std_string", "CxxString", "std::string"},
		{"std_unique_ptr", "UniquePtr", "std::unique_ptr"},
	}

	for _, tc := range testCases {
		tn := NewTypeName(tc.deadName)
		assert.Equal(t, tc.canonical, tn.String())
		assert.Equal(t, tc.cppName, tn.CppName())
	}
}

func TestIntsHaveNoDeadName(t *testing.T) {
	db := knownTypes()
	assert.Len(t, db.byDeadName, 2)

	for deadName, canonical := range db.byDeadName {
		assert.NotEqual(t, deadName, db.byCanonName[newUnchecked(canonical)].CppName)
	}
}

func TestNormalizationIsIdempotent(t *testing.T) {
	for _, raw := range []string{"std_string", "CxxString", "std_unique_ptr", "u16", "int16_t", "Widget", "std_vector", ""} {
		once := NewTypeName(raw)
		assert.Equal(t, once, NewTypeName(once.String()), "normalizing %q twice", raw)
	}
}

func TestUnknownTypesKeepTheirSpelling(t *testing.T) {
	tn := NewTypeName("Widget")
	assert.Equal(t, "Widget", tn.CppName())
	assert.False(t, IsKnownType(tn))

	_, ok := LookupDetails(tn)
	assert.False(t, ok)
}

func TestPodSafeTypes(t *testing.T) {
	table := PodSafeTypes()
	require.Len(t, table, 10)

	safety := make(map[string]bool)
	for _, ps := range table {
		safety[ps.Name.String()] = ps.ByValueSafe
	}

	assert.True(t, safety["UniquePtr"])
	assert.False(t, safety["CxxString"])
	for _, name := range []string{"i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64"} {
		assert.True(t, safety[name], name)
	}
}

func TestPrelude(t *testing.T) {
	prelude := Prelude()

	assert.Contains(t, prelude, "/**\n* <div rustbindgen=\"true\" replaces=\"std::unique_ptr\">\n*/\ntemplate<typename T> class UniquePtr {\n    T* ptr;\n};\n")
	assert.Contains(t, prelude, "/**\n* <div rustbindgen=\"true\" replaces=\"std::string\">\n*/\nclass CxxString {\n    char* ptr;\n};\n")
	assert.Equal(t, 2, strings.Count(prelude, "rustbindgen"))
	assert.NotContains(t, prelude, "int32_t")
}

func TestLookupDetailsReturnsCopy(t *testing.T) {
	td, ok := LookupDetails(NewTypeName("CxxString"))
	require.True(t, ok)
	assert.Equal(t, PreludeIncludeNormal, td.PreludePolicy)

	td.CppName = "changed"
	assert.Equal(t, "std::string", NewTypeName("CxxString").CppName())
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "CxxString", NewTypeName("std_string").String())
			assert.Equal(t, "std::unique_ptr", NewTypeName("UniquePtr").CppName())
			assert.Len(t, PodSafeTypes(), 10)
		}()
	}

	wg.Wait()
}

func TestPrefixes(t *testing.T) {
	tn := NewTypeName("Widget")

	suffix, ok := tn.Prefixes("Widget_resize")
	require.True(t, ok)
	assert.Equal(t, "resize", suffix)

	_, ok = tn.Prefixes("Widget")
	assert.False(t, ok)
	_, ok = tn.Prefixes("Widgetresize")
	assert.False(t, ok)
	_, ok = tn.Prefixes("Gadget_resize")
	assert.False(t, ok)
}
