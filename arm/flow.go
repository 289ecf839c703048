package arm

// opPopRange implements "ldmia sp!, {reglist}", loading each set
// register in ascending order from successive words at sp. This covers
// both pop {r0-rN} and the epilogue's pop {r4, pc} — when bit 15 is
// set, the loaded word lands in R[PC] like any other register, handing
// control back to the caller.
func (c *CPU) opPopRange(inst *DecodedInstruction) error {
	regList := inst.A
	for i := 0; i < 16; i++ {
		if regList&(1<<uint(i)) == 0 {
			continue
		}
		c.R[i] = c.ReadU32(c.R[SP])
		c.R[SP] += 4
	}
	return nil
}

// opBranch implements the unconditional "b" used to skip over an
// embedded literal: target = address-of-instruction + 8 + (imm24 sign
// extended, shifted left 2).
func (c *CPU) opBranch(inst *DecodedInstruction) error {
	offset := signExtend24(inst.A) << 2
	c.R[PC] = uint32(int64(inst.Addr) + 8 + int64(offset))
	return nil
}

func signExtend24(v uint32) int32 {
	if v&0x00800000 != 0 {
		v |= 0xFF000000
	}
	return int32(v)
}

// opBlx implements "blx rM". If rM's value has a registered host
// function, that function runs directly in place of interpreting
// native code at that address — this interpreter's stand-in for
// calling into a real, separately-compiled routine. Otherwise control
// transfers to that address as ordinary interpreted code, with lr set
// to the instruction following the blx.
func (c *CPU) opBlx(inst *DecodedInstruction) error {
	target := c.R[inst.A]

	if fn, ok := c.hostFuncs[target]; ok {
		args := [4]uint32{c.R[0], c.R[1], c.R[2], c.R[3]}
		c.R[0] = fn(args)
		return nil
	}

	c.R[LR] = c.R[PC]
	c.R[PC] = target
	return nil
}
