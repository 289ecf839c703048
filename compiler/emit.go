package compiler

// emitProgram performs a post-order walk of the expression tree,
// wrapping the body in the fixed prologue and epilogue that make the
// result a callable AAPCS subroutine.
func emitProgram(root *Node) ([]Instr, error) {
	var out []Instr

	// Prologue: preserve the return address and the callee-saved
	// scratch register used for indirect calls.
	out = append(out, PushSingle{Reg: LR}, PushSingle{Reg: R4})

	if err := emitNode(root, &out); err != nil {
		return nil, err
	}

	// Epilogue: the evaluation stack's last value is the result.
	out = append(out, PopSingle{Reg: R0}, PopLRReturn{})
	return out, nil
}

// emitNode appends the pseudo-instructions for n, and recursively for
// its children, to out.
func emitNode(n *Node, out *[]Instr) error {
	switch n.Kind {
	case NodeConstant:
		*out = append(*out, LoadLiteral{Target: R0, Value: n.Value}, PushSingle{Reg: R0})
		return nil

	case NodeVariable:
		*out = append(*out,
			LoadLiteral{Target: R0, Value: n.Address},
			LoadIndirect{Target: R0, Base: R0},
			PushSingle{Reg: R0},
		)
		return nil

	case NodePlus, NodeMinus, NodeProduct:
		return emitBinOp(n, out)

	case NodeCall:
		return emitCall(n, out)

	default:
		panic("compiler: unreachable node kind in emitNode")
	}
}

// emitBinOp emits both operands (left before right, so the right
// operand's result ends up topmost), then pops them into r0 (the
// topmost, i.e. the right operand) and r1 (the left operand). Subtract
// relies on this: "sub r0, r1, r0" computes r1 - r0 = left - right,
// which only comes out right if r0 holds the right operand.
func emitBinOp(n *Node, out *[]Instr) error {
	if err := emitNode(n.Left, out); err != nil {
		return err
	}
	if err := emitNode(n.Right, out); err != nil {
		return err
	}

	*out = append(*out, PopRange{Count: 2})

	var kind BinOpKind
	switch n.Kind {
	case NodePlus:
		kind = OpAdd
	case NodeMinus:
		kind = OpSub
	default:
		kind = OpMul
	}
	*out = append(*out, BinOp{Kind: kind, X: R0, Y: R1}, PushSingle{Reg: R0})
	return nil
}

// emitCall emits each argument, gathers them into r0..r(N-1) with
// individually ordered pops so the register assignment matches AAPCS
// source-order regardless of how many arguments there are, then calls
// through r4.
//
// A single combined multi-register pop (as used for binary operators)
// would assign the topmost stack value to r0, which is the wrong
// direction for call arguments: the first argument must land in r0.
// Popping one register at a time, from the last argument down to the
// first, is what gets the assignment right.
func emitCall(n *Node, out *[]Instr) error {
	count := len(n.Args)
	if count == 0 || count > maxCallArgs {
		return newArityError(n.Name, count)
	}

	for _, arg := range n.Args {
		if err := emitNode(arg, out); err != nil {
			return err
		}
	}

	for i := count; i >= 1; i-- {
		*out = append(*out, PopSingle{Reg: Reg(i - 1)})
	}

	*out = append(*out,
		LoadLiteral{Target: R4, Value: n.Address},
		BranchLinkExchange{Reg: R4},
		PushSingle{Reg: R0},
	)
	return nil
}

// wordCount returns the number of 32-bit words emitNode's output for n
// encodes to, not counting the prologue and epilogue that
// programWordCount adds. It is derived
// directly from the per-node emission rules above: a load-literal
// trampoline is always 3 words, so Constant is load-literal + push = 4
// words and Variable adds one more load = 5; a binary operator adds 3
// words over its operands, and a call adds len(args)+5 over its
// arguments.
func wordCount(n *Node) int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case NodeConstant:
		return 4
	case NodeVariable:
		return 5
	case NodePlus, NodeMinus, NodeProduct:
		return wordCount(n.Left) + wordCount(n.Right) + 3
	case NodeCall:
		total := 0
		for _, a := range n.Args {
			total += wordCount(a)
		}
		return total + len(n.Args) + 5
	default:
		return 0
	}
}

// programWordCount returns the total word count of a full compiled
// program: the prologue and epilogue (2 words each) plus the body.
func programWordCount(root *Node) int {
	return 4 + wordCount(root)
}
