package arm

// opPush implements "str rT, [sp, #-4]!": decrement sp, then store.
func (c *CPU) opPush(inst *DecodedInstruction) error {
	c.R[SP] -= 4
	c.WriteU32(c.R[SP], c.R[inst.A])
	return nil
}

// opPopSingle implements "ldr rT, [sp], #4": load, then increment sp.
func (c *CPU) opPopSingle(inst *DecodedInstruction) error {
	c.R[inst.A] = c.ReadU32(c.R[SP])
	c.R[SP] += 4
	return nil
}

// opLoadLiteral implements "ldr rT, [pc]". On real hardware pc at
// execute time reads as the address of this instruction plus 8, which
// is where the compiler's trampoline places the embedded literal (two
// words past the ldr itself, past the branch-over).
func (c *CPU) opLoadLiteral(inst *DecodedInstruction) error {
	c.R[inst.A] = c.ReadU32(inst.Addr + 8)
	return nil
}

// opLoadIndirect implements "ldr rT, [rN]".
func (c *CPU) opLoadIndirect(inst *DecodedInstruction) error {
	c.R[inst.A] = c.ReadU32(c.R[inst.B])
	return nil
}
