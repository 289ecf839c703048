// Package arm is a software interpreter for the small, unconditional
// subset of ARM A32 that the compiler package emits: literal loads,
// single and multi-register stack transfers, three dyadic arithmetic
// instructions, and a branch-and-exchange call. It exists to let the
// compiler's own tests execute what they generate rather than trust the
// encoding on faith, and to back the standalone runner command.
package arm

// returnSentinel is the program counter value Call sets lr to before
// jumping into a subroutine. The emitted subroutine's epilogue restores
// pc from the stack slot where lr was saved, so control returns here
// when the subroutine's own "ret" is a plain pop {r4, pc}; Call's fetch
// loop stops the moment pc reaches it.
const returnSentinel uint32 = 0xFFFFFFFC

// HostFunc stands in for a real native function the emitted code would
// call by address. Only the first four arguments are visible, matching
// the AAPCS register window this compiler's calls ever use.
type HostFunc func(args [4]uint32) uint32

// CPU holds the register file and memory of one interpreted machine.
// R13, R14 and R15 are conventionally the stack pointer, link register
// and program counter; SP, LR and PC below name them for readability.
type CPU struct {
	R [16]uint32

	Mem []byte

	// hostFuncs lets Call substitute a Go closure for a callee address
	// that isn't itself interpretable machine code — the software
	// analogue of the emitted subroutine's blx to a real native
	// function.
	hostFuncs map[uint32]HostFunc

	Running bool
}

const (
	SP = 13
	LR = 14
	PC = 15
)

// New creates a CPU with the given amount of addressable memory.
func New(memSize int) *CPU {
	return &CPU{
		Mem:       make([]byte, memSize),
		hostFuncs: make(map[uint32]HostFunc),
	}
}

// LoadCode copies code into memory at addr.
func (c *CPU) LoadCode(addr uint32, code []byte) {
	copy(c.Mem[addr:], code)
}

// RegisterHostFunc binds addr to fn. A blx to addr invokes fn directly
// instead of fetching and decoding instructions at that address.
func (c *CPU) RegisterHostFunc(addr uint32, fn HostFunc) {
	c.hostFuncs[addr] = fn
}

// Call runs the subroutine at entry with the given stack, and returns
// its result register once it returns.
func (c *CPU) Call(entry, stackTop uint32) (uint32, error) {
	c.R[SP] = stackTop
	c.R[LR] = returnSentinel
	c.R[PC] = entry
	c.Running = true

	for c.Running && c.R[PC] != returnSentinel {
		if err := c.Execute(); err != nil {
			return 0, err
		}
	}
	c.Running = false
	return c.R[0], nil
}
