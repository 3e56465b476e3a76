package minify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylecache/internal/adapters/minify"
)

func TestMinifier_Process(t *testing.T) {
	t.Parallel()

	in := "a {\n  color: #ff0000;\n  margin: 0px;\n}\n\n/* comment */\nb {\n  color: red;\n}\n"

	out, err := minify.New().Process(in)
	require.NoError(t, err)
	assert.Less(t, len(out), len(in))
	assert.NotContains(t, out, "comment")
	assert.NotContains(t, out, "\n")
	assert.Contains(t, out, "a{")
}

func TestMinifier_Empty(t *testing.T) {
	t.Parallel()

	out, err := minify.New().Process("")
	require.NoError(t, err)
	assert.Empty(t, out)
}
