package compiler

import "strings"

// opChar reports whether b is one of the three binary operators this
// grammar knows about.
func opChar(b byte) bool {
	return b == '+' || b == '-' || b == '*'
}

// priority returns the precedence level of an operator character. Lower
// binds less tightly: '+'/'-' are level 0, '*' is level 1.
func priority(b byte) int {
	if b == '*' {
		return 1
	}
	return 0
}

// Parse turns a textual arithmetic expression into an expression tree.
// Spaces anywhere in the source are ignored, per the accepted grammar.
func Parse(expr string) (*Node, error) {
	stripped := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, expr)
	if stripped == "" {
		return nil, newSyntaxError(expr, "empty expression")
	}
	return parseWindow(stripped)
}

// parseWindow applies the split-on-lowest-precedence-operator decision
// procedure to one substring: strip redundant parens, find the
// lowest-precedence top-level operator, and otherwise classify the
// remainder as an atom.
func parseWindow(s string) (*Node, error) {
	s = stripRedundantParens(s)
	if s == "" {
		return nil, newSyntaxError(s, "empty operand")
	}

	if idx, ok := findSplit(s); ok {
		left := s[:idx]
		right := s[idx+1:]
		if right == "" {
			return nil, newSyntaxError(s, "empty right operand")
		}

		var leftNode *Node
		var err error
		if left == "" {
			// Leading sign: materializes a zero left operand.
			leftNode = &Node{Kind: NodeConstant, Value: 0}
		} else {
			leftNode, err = parseWindow(left)
			if err != nil {
				return nil, err
			}
		}

		rightNode, err := parseWindow(right)
		if err != nil {
			return nil, err
		}

		return &Node{Kind: operatorKind(s[idx]), Left: leftNode, Right: rightNode}, nil
	}

	return parseAtom(s)
}

// operatorKind maps an operator character to its node kind.
func operatorKind(b byte) NodeKind {
	switch b {
	case '+':
		return NodePlus
	case '-':
		return NodeMinus
	default:
		return NodeProduct
	}
}

// stripRedundantParens removes matching outer parentheses while the
// interior remains balanced. It never strips the parentheses of a
// trailing function call, since those are preceded by a name and so
// never occupy position 0.
func stripRedundantParens(s string) string {
	for len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		interior := s[1 : len(s)-1]
		if !parensBalanced(interior) {
			break
		}
		s = interior
	}
	return s
}

// parensBalanced reports whether s is a balanced run of parentheses: the
// running count of '(' minus ')' is never negative and ends at zero.
func parensBalanced(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// findSplit scans s left to right at nesting depth zero, looking for the
// lowest-precedence operator. Ties are broken by taking the rightmost
// candidate, which yields left-associative trees once the left half is
// reparsed recursively. After considering a candidate, the scan skips the
// rest of its contiguous run of operator characters, so a construction
// like "a*-b" treats the run "*-" as a single decision point and lets the
// trailing '-' fall into the right subtree as a leading sign.
func findSplit(s string) (int, bool) {
	depth := 0
	bestIdx := -1
	bestPriority := 2 // higher than any real operator priority

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '(':
			depth++
			i++
		case c == ')':
			depth--
			i++
		case depth == 0 && opChar(c):
			pri := priority(c)
			if pri <= bestPriority {
				bestIdx = i
				bestPriority = pri
			}
			j := i + 1
			for j < len(s) && opChar(s[j]) {
				j++
			}
			i = j
		default:
			i++
		}
	}

	return bestIdx, bestIdx >= 0
}

// parseAtom classifies a window with no top-level operator: a decimal
// constant, a function call, or a bare variable name.
func parseAtom(s string) (*Node, error) {
	if isDigit(s[0]) {
		v, err := parseConstant(s)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: NodeConstant, Value: v}, nil
	}

	if k := strings.IndexByte(s, '('); k >= 0 {
		return parseCall(s, k)
	}

	if err := validateIdentifier(s); err != nil {
		return nil, err
	}
	return &Node{Kind: NodeVariable, Name: s}, nil
}

// parseConstant parses a run of decimal digits into a uint32, truncating
// silently on overflow per the documented overflow policy.
func parseConstant(s string) (uint32, error) {
	var v uint32
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, newSyntaxError(s, "invalid character in decimal literal")
		}
		v = v*10 + uint32(s[i]-'0')
	}
	return v, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// parseCall parses "name(args)" where k is the index of the first '('.
func parseCall(s string, k int) (*Node, error) {
	name := s[:k]
	if name == "" {
		return nil, newSyntaxError(s, "empty function name")
	}
	if err := validateIdentifier(name); err != nil {
		return nil, err
	}

	depth := 0
	closeIdx := -1
	for i := k; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				closeIdx = i
			}
		}
		if closeIdx >= 0 {
			break
		}
	}
	if closeIdx < 0 {
		return nil, newSyntaxError(s, "unbalanced parentheses in call")
	}
	if trailing := s[closeIdx+1:]; trailing != "" {
		return nil, newSyntaxError(s, "unexpected characters after call")
	}

	interior := s[k+1 : closeIdx]
	parts := splitTopLevelCommas(interior)

	node := &Node{Kind: NodeCall, Name: name}
	for _, part := range parts {
		if part == "" {
			return nil, newSyntaxError(s, "empty argument")
		}
		arg, err := parseWindow(part)
		if err != nil {
			return nil, err
		}
		node.Args = append(node.Args, arg)
	}
	return node, nil
}

// splitTopLevelCommas splits s at commas that sit at parenthesis depth
// zero. An empty s yields no parts (a zero-argument call), letting the
// arity check in the emitter report ArityError uniformly.
func splitTopLevelCommas(s string) []string {
	if s == "" {
		return nil
	}
	depth := 0
	start := 0
	var parts []string
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// validateIdentifier rejects the grammar/grouping characters that
// parseAtom's earlier checks don't already exclude.
func validateIdentifier(name string) error {
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '+', '-', '*', '(', ')', ',':
			return newSyntaxError(name, "invalid character in identifier")
		}
	}
	return nil
}
