package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTopics(t *testing.T) {
	m, err := New(Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"safety", "strategy"}, m.List())

	topic, ok := m.Get("strategy")
	require.True(t, ok)
	assert.Equal(t, ".md", topic.Format)
	assert.Contains(t, topic.Content, "directory-link")
	assert.Contains(t, topic.Content, "sharelink sync", "rebuilding a mirror is documented")

	_, ok = m.Get("--safety")
	assert.True(t, ok, "flag-style names resolve too")
}

func TestNew_CustomSource(t *testing.T) {
	source := fstest.MapFS{
		"one.md":       {Data: []byte("# One")},
		"two.txt":      {Data: []byte("two")},
		"ignored.bin":  {Data: []byte{0}},
		"dir/three.md": {Data: []byte("# Three")},
	}

	m, err := New(Options{Source: source})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, m.List())
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string { return strings.ToUpper(content) }

func TestRender(t *testing.T) {
	source := fstest.MapFS{"one.md": {Data: []byte("# One")}}

	plain, err := New(Options{Source: source})
	require.NoError(t, err)
	topic, _ := plain.Get("one")
	assert.Equal(t, "# One", plain.Render(topic))

	upper, err := New(Options{Source: source, Renderer: upperRenderer{}})
	require.NoError(t, err)
	assert.Equal(t, "# ONE", upper.Render(topic))
}

func TestGlamourRenderer(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 60}

	assert.Equal(t, "raw text", r.Render("raw text", ".txt"))

	out := r.Render("# Title\n\nSome *text*.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
}

func TestInstall(t *testing.T) {
	m, err := New(Options{})
	require.NoError(t, err)

	root := &cobra.Command{Use: "sharelink"}
	root.AddCommand(&cobra.Command{Use: "sync", Short: "Link the shared directories", Run: func(*cobra.Command, []string) {}})
	m.Install(root)

	run := func(args ...string) string {
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return buf.String()
	}

	assert.Contains(t, run("help", "topics"), "strategy")
	assert.Contains(t, run("help", "safety"), "Data safety")
	assert.Contains(t, run("help", "sync"), "Link the shared directories")
}
