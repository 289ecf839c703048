package compiler

import (
	"errors"
	"testing"
)

func constNode(v uint32) *Node { return &Node{Kind: NodeConstant, Value: v} }
func varNode(name string) *Node { return &Node{Kind: NodeVariable, Name: name} }

func binNode(kind NodeKind, l, r *Node) *Node {
	return &Node{Kind: kind, Left: l, Right: r}
}

// sameShape compares two trees structurally, ignoring Address (unset
// before Resolve).
func sameShape(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Value != b.Value || a.Name != b.Name {
		return false
	}
	if !sameShape(a.Left, b.Left) || !sameShape(a.Right, b.Right) {
		return false
	}
	if len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !sameShape(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}

func mustParse(t *testing.T, expr string) *Node {
	t.Helper()
	n, err := Parse(expr)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", expr, err)
	}
	return n
}

func TestAssociativity(t *testing.T) {
	want := binNode(NodePlus, binNode(NodePlus, varNode("a"), varNode("b")), varNode("c"))
	got := mustParse(t, "a+b+c")
	if !sameShape(got, want) {
		t.Errorf("a+b+c: shape mismatch, got %+v", got)
	}

	wantMinus := binNode(NodeMinus, binNode(NodeMinus, varNode("a"), varNode("b")), varNode("c"))
	gotMinus := mustParse(t, "a-b-c")
	if !sameShape(gotMinus, wantMinus) {
		t.Errorf("a-b-c: shape mismatch, got %+v", gotMinus)
	}

	wantMul := binNode(NodeProduct, binNode(NodeProduct, varNode("a"), varNode("b")), varNode("c"))
	gotMul := mustParse(t, "a*b*c")
	if !sameShape(gotMul, wantMul) {
		t.Errorf("a*b*c: shape mismatch, got %+v", gotMul)
	}
}

func TestPrecedence(t *testing.T) {
	want1 := binNode(NodePlus, varNode("a"), binNode(NodeProduct, varNode("b"), varNode("c")))
	if got := mustParse(t, "a+b*c"); !sameShape(got, want1) {
		t.Errorf("a+b*c: shape mismatch, got %+v", got)
	}

	want2 := binNode(NodePlus, binNode(NodeProduct, varNode("a"), varNode("b")), varNode("c"))
	if got := mustParse(t, "a*b+c"); !sameShape(got, want2) {
		t.Errorf("a*b+c: shape mismatch, got %+v", got)
	}
}

func TestParenIdempotence(t *testing.T) {
	base := mustParse(t, "a+b*c")
	once := mustParse(t, "(a+b*c)")
	twice := mustParse(t, "((a+b*c))")
	if !sameShape(base, once) || !sameShape(base, twice) {
		t.Errorf("parenthesization changed tree shape")
	}
}

func TestLeadingSign(t *testing.T) {
	wantMinus := binNode(NodeMinus, constNode(0), varNode("x"))
	if got := mustParse(t, "-x"); !sameShape(got, wantMinus) {
		t.Errorf("-x: shape mismatch, got %+v", got)
	}

	wantPlus := binNode(NodePlus, constNode(0), varNode("x"))
	if got := mustParse(t, "+x"); !sameShape(got, wantPlus) {
		t.Errorf("+x: shape mismatch, got %+v", got)
	}
}

func TestSignAfterOperator(t *testing.T) {
	want := binNode(NodeProduct, varNode("a"), binNode(NodeMinus, constNode(0), varNode("b")))
	if got := mustParse(t, "a*-b"); !sameShape(got, want) {
		t.Errorf("a*-b: shape mismatch, got %+v", got)
	}
}

func TestFunctionCallShape(t *testing.T) {
	want := &Node{Kind: NodeCall, Name: "f", Args: []*Node{varNode("a"), varNode("b"), varNode("c")}}
	if got := mustParse(t, "f(a,b,c)"); !sameShape(got, want) {
		t.Errorf("f(a,b,c): shape mismatch, got %+v", got)
	}
}

func TestCommaNesting(t *testing.T) {
	inner := &Node{Kind: NodeCall, Name: "g", Args: []*Node{varNode("a"), varNode("b")}}
	want := &Node{Kind: NodeCall, Name: "f", Args: []*Node{inner, varNode("c")}}
	if got := mustParse(t, "f(g(a,b),c)"); !sameShape(got, want) {
		t.Errorf("f(g(a,b),c): shape mismatch, got %+v", got)
	}
}

func TestConstantParsing(t *testing.T) {
	n := mustParse(t, "12")
	if n.Kind != NodeConstant || n.Value != 12 {
		t.Errorf("\"12\": got %+v, want Constant(12)", n)
	}
}

func TestSpacesIgnored(t *testing.T) {
	a := mustParse(t, "a + b * c")
	b := mustParse(t, "a+b*c")
	if !sameShape(a, b) {
		t.Errorf("whitespace changed tree shape")
	}
}

func TestSyntaxErrors(t *testing.T) {
	cases := []string{
		"",
		"(a+b",
		"a+",
		"f()",
		"f(,a)",
		"a,b",
	}
	for _, expr := range cases {
		_, err := Parse(expr)
		if expr == "f()" {
			// Zero-argument calls parse fine; they fail at the arity
			// check during emission, not at parse time.
			if err != nil {
				t.Errorf("Parse(%q) = %v, want nil (arity is checked at emit)", expr, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want an error", expr)
			continue
		}
		var syn *SyntaxError
		if !errors.As(err, &syn) {
			t.Errorf("Parse(%q) = %v, want a *SyntaxError", expr, err)
		}
	}
}
