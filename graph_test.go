package autograd

import (
	"fmt"
	"strings"
	"testing"
)

func TestDot(t *testing.T) {
	x := NewLabeled(2.0, "x")
	y := NewLabeled(-3.0, "y")
	z := x.Mul(y)
	z.SetLabel("z")

	dot := Dot(z)

	if !strings.HasPrefix(dot, "digraph {") {
		t.Errorf("Expected a digraph, got %q", dot)
	}
	if !strings.Contains(dot, `rankdir = "LR"`) {
		t.Error("Expected left-to-right rank direction")
	}
	for _, label := range []string{
		"z | data=-6.0000 | grad=0.0000",
		"x | data=2.0000 | grad=0.0000",
		"y | data=-3.0000 | grad=0.0000",
	} {
		if !strings.Contains(dot, label) {
			t.Errorf("Expected node label %q in:\n%s", label, dot)
		}
	}
	// Edges run consumer -> operand, labelled with the consumer's op.
	edge := fmt.Sprintf("%q -> %q [label=\"*\"]", dotName(z), dotName(x))
	if !strings.Contains(dot, edge) {
		t.Errorf("Expected edge %s in:\n%s", edge, dot)
	}
}

func TestDotSharedNodeDeclaredOnce(t *testing.T) {
	a := NewLabeled(2.0, "a")
	r := a.Mul(NewValue(3.0)).Add(a.Mul(NewValue(4.0)))

	dot := Dot(r)
	decl := fmt.Sprintf("%q [label=", dotName(a))
	if got := strings.Count(dot, decl); got != 1 {
		t.Errorf("Expected shared node declared once, got %d in:\n%s", got, dot)
	}
}

func TestDotReflectsGradients(t *testing.T) {
	x := NewLabeled(2.0, "x")
	h := x.Tanh()
	if err := h.Backward(); err != nil {
		t.Fatalf("Backward failed: %v", err)
	}

	dot := Dot(h)
	if !strings.Contains(dot, "grad=1.0000") {
		t.Errorf("Expected root gradient in export:\n%s", dot)
	}
}

func TestTree(t *testing.T) {
	a := NewLabeled(2.0, "a")
	b := NewLabeled(3.0, "b")
	r := a.Mul(b).Add(a.Tanh())
	r.SetLabel("r")

	tree := Tree(r)

	for _, want := range []string{"r", "a", "b", "[+]", "[*]", "[tanh]", "(shared)"} {
		if !strings.Contains(tree, want) {
			t.Errorf("Expected %q in tree:\n%s", want, tree)
		}
	}
}
