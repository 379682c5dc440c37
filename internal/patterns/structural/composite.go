package structural

import (
	"fmt"
	"strings"

	"patternlab/internal/domain"
)

// node is a file-tree component: a leaf (file) carries a size, a directory
// carries children. Both answer print and size uniformly.
type node struct {
	name     string
	size     int
	children []node
}

func (n node) isDir() bool { return n.children != nil }

func (n node) total() int {
	if !n.isDir() {
		return n.size
	}
	sum := 0
	for _, c := range n.children {
		sum += c.total()
	}
	return sum
}

func (n node) render(depth int, trace domain.Trace) domain.Trace {
	indent := strings.Repeat("  ", depth)
	if n.isDir() {
		trace = append(trace, indent+n.name+"/")
		for _, c := range n.children {
			trace = c.render(depth+1, trace)
		}
		return trace
	}
	return append(trace, fmt.Sprintf("%s%s (%d bytes)", indent, n.name, n.size))
}

// Composite renders the fixed file tree rooted at the directory named by
// Args[0] and totals it through the uniform component interface.
func Composite(in domain.Input) domain.Trace {
	root := "project"
	if !in.IsZero() {
		root = in.Args[0]
	}

	tree := node{
		name: root,
		children: []node{
			{name: "README.md", size: 12},
			{name: "src", children: []node{
				{name: "main.go", size: 240},
				{name: "util.go", size: 80},
			}},
		},
	}

	trace := tree.render(0, domain.Trace{})
	return append(trace, fmt.Sprintf("Total size: %d bytes", tree.total()))
}
