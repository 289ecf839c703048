package arm_test

import (
	"testing"

	"github.com/hollowcrate/armjit/arm"
	"github.com/hollowcrate/armjit/compiler"
)

// Memory layout shared by every test below: code lands low, the stack
// grows down from well above it, and variables sit above the stack so
// neither region can ever collide for expressions this small.
const (
	memSize  = 0x10000
	codeBase = 0x1000
	stackTop = 0x7000
	varBase  = 0x7100
)

func compileAndRun(t *testing.T, expr string, symbols compiler.SymbolTable) (*arm.CPU, uint32) {
	t.Helper()
	code, err := compiler.New().Compile(expr, symbols)
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", expr, err)
	}

	cpu := arm.New(memSize)
	cpu.LoadCode(codeBase, code)

	result, err := cpu.Call(codeBase, stackTop)
	if err != nil {
		t.Fatalf("Call(%q) failed: %v", expr, err)
	}
	return cpu, result
}

func TestRunPureConstants(t *testing.T) {
	_, got := compileAndRun(t, "(1+2)*3", nil)
	if got != 9 {
		t.Errorf("(1+2)*3 = %d, want 9", got)
	}
}

func TestRunPrecedence(t *testing.T) {
	_, got := compileAndRun(t, "1+2*3", nil)
	if got != 7 {
		t.Errorf("1+2*3 = %d, want 7", got)
	}
}

func TestRunVariableReadAndMutation(t *testing.T) {
	cpu := arm.New(memSize)
	cpu.WriteU32(varBase, 10)

	code, err := compiler.New().Compile("a+5", compiler.SymbolTable{"a": varBase})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	cpu.LoadCode(codeBase, code)

	got, err := cpu.Call(codeBase, stackTop)
	if err != nil {
		t.Fatalf("first Call failed: %v", err)
	}
	if got != 15 {
		t.Errorf("a+5 with a=10 = %d, want 15", got)
	}

	cpu.WriteU32(varBase, 20)
	got, err = cpu.Call(codeBase, stackTop)
	if err != nil {
		t.Fatalf("second Call failed: %v", err)
	}
	if got != 25 {
		t.Errorf("a+5 with a=20 = %d, want 25", got)
	}
}

func TestRunLeadingMinus(t *testing.T) {
	_, got := compileAndRun(t, "-7+10", nil)
	if got != 3 {
		t.Errorf("-7+10 = %d, want 3", got)
	}
}

func divFunc(args [4]uint32) uint32 {
	return args[0] / args[1]
}

func TestRunFunctionCall(t *testing.T) {
	const divAddr = 0x9000

	code, err := compiler.New().Compile("div(2+4,2)", compiler.SymbolTable{"div": divAddr})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	cpu := arm.New(memSize)
	cpu.LoadCode(codeBase, code)
	cpu.RegisterHostFunc(divAddr, divFunc)

	got, err := cpu.Call(codeBase, stackTop)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if got != 3 {
		t.Errorf("div(2+4,2) = %d, want 3", got)
	}
}

func TestRunMixedVariablesAndCall(t *testing.T) {
	const (
		aAddr   = varBase
		cAddr   = varBase + 4
		divAddr = 0x9000
	)

	cpu := arm.New(memSize)
	cpu.WriteU32(aAddr, 1)
	cpu.WriteU32(cAddr, 5)
	cpu.RegisterHostFunc(divAddr, divFunc)

	code, err := compiler.New().Compile("(1+a)*c + div(2+4,2)", compiler.SymbolTable{
		"a":   aAddr,
		"c":   cAddr,
		"div": divAddr,
	})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	cpu.LoadCode(codeBase, code)

	got, err := cpu.Call(codeBase, stackTop)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if got != 13 {
		t.Errorf("(1+a)*c + div(2+4,2) = %d, want 13", got)
	}
}
