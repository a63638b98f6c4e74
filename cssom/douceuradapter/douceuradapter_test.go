package douceuradapter

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shelltk/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleCSS = `
.panel { opacity: 0.5; color: red !important; }
.panel-button:hover { opacity: 0.8; opacity: 0.9; }
@media screen {
  .menu { background-color: #222; }
}
`

func TestParseRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.theme")
	defer teardown()
	//
	sheet, err := Parse("sample.css", sampleCSS)
	require.NoError(t, err)
	assert.Equal(t, "sample.css", sheet.Name())
	assert.False(t, sheet.Empty())
	rules := sheet.Rules()
	require.Len(t, rules, 3, "nested rules of at-rules must be visible")
	assert.Equal(t, ".panel", rules[0].Selector())
	assert.Equal(t, []string{"opacity", "color"}, rules[0].Properties())
	assert.Equal(t, style.Property("0.5"), rules[0].Value("opacity"))
	assert.True(t, rules[0].IsImportant("color"))
	assert.False(t, rules[0].IsImportant("opacity"))
	assert.Equal(t, style.Property("0.9"), rules[1].Value("opacity"), "last declaration wins")
	assert.Equal(t, style.NullStyle, rules[1].Value("color"))
	assert.Equal(t, ".menu", rules[2].Selector())
}

func TestAppendRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shelltk.theme")
	defer teardown()
	//
	a, err := Parse("a.css", ".a { opacity: 1; }")
	require.NoError(t, err)
	b, err := Parse("b.css", ".b { opacity: 0; }")
	require.NoError(t, err)
	a.AppendRules(b)
	assert.Len(t, a.Rules(), 2)
}
