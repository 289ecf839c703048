package arm

// opAdd implements "add rX, rY, rX": rX := rY + rX.
func (c *CPU) opAdd(inst *DecodedInstruction) error {
	x, y := inst.A, inst.B
	c.R[x] = c.R[y] + c.R[x]
	return nil
}

// opSub implements "sub rX, rY, rX": rX := rY - rX.
func (c *CPU) opSub(inst *DecodedInstruction) error {
	x, y := inst.A, inst.B
	c.R[x] = c.R[y] - c.R[x]
	return nil
}

// opMul implements "mul rX, rY, rX": rX := rX * rY, low 32 bits.
func (c *CPU) opMul(inst *DecodedInstruction) error {
	x, y := inst.A, inst.B
	c.R[x] = c.R[x] * c.R[y]
	return nil
}
