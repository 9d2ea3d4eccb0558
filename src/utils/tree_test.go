package utils

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestShow(t *testing.T) {
	root := &Node{}
	root.Build([]string{
		"bubble/run 1",
		"bubble/run 2",
		"selection/run 3",
	})

	var buf bytes.Buffer
	root.Show(&buf)

	want := ".\n" +
		"├── bubble\n" +
		"│   ├── run 1\n" +
		"│   └── run 2\n" +
		"└── selection\n" +
		"    └── run 3\n"
	assert.Equal(t, want, buf.String())
}

func TestShowDeep(t *testing.T) {
	root := &Node{}
	root.Build([]string{"a/b/c", "a/d", "e"})

	var buf bytes.Buffer
	root.Show(&buf)

	want := ".\n" +
		"├── a\n" +
		"│   ├── b\n" +
		"│   │   └── c\n" +
		"│   └── d\n" +
		"└── e\n"
	assert.Equal(t, want, buf.String())
}

func TestShowEmpty(t *testing.T) {
	var buf bytes.Buffer
	(&Node{}).Show(&buf)
	assert.Equal(t, ".\n", buf.String())
}

func TestChildReuse(t *testing.T) {
	root := &Node{}
	a := root.Child("a")
	b := root.Child("b")

	require.Len(t, root.Children, 2)
	assert.Same(t, a, root.Child("a"))
	assert.Same(t, b, a.Right)
	assert.Nil(t, b.Right)
	assert.Same(t, root, b.Parent)
}
