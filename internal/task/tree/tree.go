// Package tree keeps an explicit adjacency index over one list's tasks:
// nodes keyed by id plus a parent -> children index. All walks are iterative
// and bounded by the number of nodes, so corrupt (cyclic) data cannot hang them.
package tree

import "errors"

// ErrCorrupt reports a parent chain that loops back on itself.
var ErrCorrupt = errors.New("tree: parent chain contains a cycle")

// Node is the structural part of a task.
type Node struct {
	ID       string
	ParentID string // "" for roots
}

// Forest is a read-only index over a set of nodes.
type Forest struct {
	nodes    map[string]Node
	children map[string][]string // parent id ("" for roots) -> child ids, insertion order
}

// New indexes nodes. Children keep the order in which they appear in nodes.
// A node whose parent is not part of the set is indexed as a root.
func New(nodes []Node) *Forest {
	f := &Forest{
		nodes:    make(map[string]Node, len(nodes)),
		children: make(map[string][]string),
	}
	for _, n := range nodes {
		f.nodes[n.ID] = n
	}
	for _, n := range nodes {
		f.children[f.indexKey(n.ParentID)] = append(f.children[f.indexKey(n.ParentID)], n.ID)
	}
	return f
}

func (f *Forest) indexKey(parentID string) string {
	if _, ok := f.nodes[parentID]; ok {
		return parentID
	}
	return ""
}

// Children returns the direct children of id.
func (f *Forest) Children(id string) []string {
	return append([]string(nil), f.children[id]...)
}

// Roots returns parentless nodes (and nodes whose parent is outside the set).
func (f *Forest) Roots() []string {
	return append([]string(nil), f.children[""]...)
}

// Ancestors walks from id's parent up to the root, nearest first.
func (f *Forest) Ancestors(id string) ([]string, error) {
	var out []string
	cur, ok := f.nodes[id]
	if !ok {
		return nil, nil
	}
	for steps := 0; cur.ParentID != ""; steps++ {
		if steps >= len(f.nodes) {
			return out, ErrCorrupt
		}
		parent, ok := f.nodes[cur.ParentID]
		if !ok {
			break
		}
		out = append(out, parent.ID)
		cur = parent
	}
	return out, nil
}

// IsAncestor reports whether ancestorID lies on id's parent chain.
// A corrupt chain is treated as containing every id.
func (f *Forest) IsAncestor(ancestorID, id string) bool {
	chain, err := f.Ancestors(id)
	if err != nil {
		return true
	}
	for _, a := range chain {
		if a == ancestorID {
			return true
		}
	}
	return false
}

// Descendants returns every transitive descendant of id in post-order:
// each node appears after all of its own descendants, so deleting in the
// returned order never leaves a row whose parent is already gone.
func (f *Forest) Descendants(id string) []string {
	type frame struct {
		id       string
		expanded bool
	}

	var out []string
	visited := map[string]bool{id: true}
	stack := []frame{}
	kids := f.children[id]
	for i := len(kids) - 1; i >= 0; i-- {
		stack = append(stack, frame{id: kids[i]})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.expanded {
			stack = stack[:len(stack)-1]
			out = append(out, top.id)
			continue
		}
		if visited[top.id] {
			stack = stack[:len(stack)-1]
			continue
		}
		visited[top.id] = true
		stack[len(stack)-1].expanded = true

		kids := f.children[top.id]
		for i := len(kids) - 1; i >= 0; i-- {
			if !visited[kids[i]] {
				stack = append(stack, frame{id: kids[i]})
			}
		}
	}
	return out
}
