package utils

import (
	"fmt"
	"io"
	"strings"
)

const (
	pipe    = "│   "
	tee     = "├── "
	lasttee = "└── "
	blank   = "    "
	rootDir = "."
)

// Node is one entry of a tree built from "/"-separated paths. Only the root
// has a nil Parent.
type Node struct {
	Name     string
	Parent   *Node
	Children []*Node
	Right    *Node

	index map[string]*Node
}

// Show writes the node and its descendants to w, one line per named node.
func (node *Node) Show(w io.Writer) {
	if node.Parent == nil {
		fmt.Fprintln(w, rootDir)
	} else {
		fmt.Fprintf(w, "%s%s\n", node.indent(), node.Name)
	}
	for _, child := range node.Children {
		child.Show(w)
	}
}

// indent draws the column of every ancestor below the root, then the node's
// own glyph. An ancestor that still has a right sibling keeps its pipe open.
func (node *Node) indent() string {
	var cols []string
	for p := node.Parent; p != nil && p.Parent != nil; p = p.Parent {
		if p.Right != nil {
			cols = append(cols, pipe)
		} else {
			cols = append(cols, blank)
		}
	}

	var b strings.Builder
	for i := len(cols) - 1; i >= 0; i-- {
		b.WriteString(cols[i])
	}
	if node.Right != nil {
		b.WriteString(tee)
	} else {
		b.WriteString(lasttee)
	}
	return b.String()
}

// Build adds one level per element of each path, reusing nodes that already
// exist.
func (node *Node) Build(paths []string) {
	for _, path := range paths {
		current := node
		for _, name := range strings.Split(path, "/") {
			current = current.Child(name)
		}
	}
}

// Child returns the named child, appending it when missing.
func (node *Node) Child(name string) *Node {
	if child, ok := node.index[name]; ok {
		return child
	}
	if node.index == nil {
		node.index = make(map[string]*Node)
	}

	child := &Node{Name: name, Parent: node}
	if n := len(node.Children); n > 0 {
		node.Children[n-1].Right = child
	}
	node.Children = append(node.Children, child)
	node.index[name] = child
	return child
}
