package autograd

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Dot renders the graph rooted at root in Graphviz DOT form. Nodes are
// record-shaped and carry label, data and gradient; each edge points from a
// derived node to one of its operands and is labelled with the derived
// node's operator. The export reads the graph only; rendering it has no
// effect on computation.
func Dot(root *Value) string {
	var b strings.Builder
	b.WriteString("digraph {\n")
	b.WriteString("\trankdir = \"LR\";\n")

	visited := make(map[uint64]bool)
	var walk func(*Value)
	walk = func(v *Value) {
		if visited[v.id] {
			return
		}
		visited[v.id] = true
		fmt.Fprintf(&b, "\t%q [label=%q, shape=record];\n", dotName(v), dotLabel(v))
		for _, child := range v.prev {
			fmt.Fprintf(&b, "\t%q -> %q [label=%q];\n", dotName(v), dotName(child), v.op.Symbol())
			walk(child)
		}
	}
	walk(root)

	b.WriteString("}\n")
	return b.String()
}

func dotName(v *Value) string {
	return fmt.Sprintf("%x", v.id)
}

func dotLabel(v *Value) string {
	return fmt.Sprintf("%s | data=%.4f | grad=%.4f", v.label, v.data, v.grad)
}

// Tree renders the expression tree rooted at root for console inspection.
// A node shared by several consumers is expanded under its first consumer
// and shown as a back-reference afterwards.
func Tree(root *Value) string {
	tree := treeprint.NewWithRoot(treeText(root))
	seen := map[uint64]bool{root.id: true}
	addOperands(tree, root, seen)
	return tree.String()
}

func addOperands(branch treeprint.Tree, v *Value, seen map[uint64]bool) {
	for _, child := range v.prev {
		if seen[child.id] {
			branch.AddNode(treeText(child) + " (shared)")
			continue
		}
		seen[child.id] = true
		if child.IsLeaf() {
			branch.AddNode(treeText(child))
			continue
		}
		addOperands(branch.AddBranch(treeText(child)), child, seen)
	}
}

func treeText(v *Value) string {
	if v.op == OpNone {
		return fmt.Sprintf("%s data=%.4f grad=%.4f", v.label, v.data, v.grad)
	}
	return fmt.Sprintf("%s [%s] data=%.4f grad=%.4f", v.label, v.op.Symbol(), v.data, v.grad)
}
