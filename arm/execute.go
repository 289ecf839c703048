package arm

import "fmt"

// Execute fetches, decodes and runs a single instruction.
func (c *CPU) Execute() error {
	if !c.Running {
		return nil
	}

	addr := c.R[PC]
	word := c.ReadU32(addr)
	c.R[PC] += 4

	inst, err := c.Decode(word, addr)
	if err != nil {
		return fmt.Errorf("decode failed at %08X: %w", addr, err)
	}

	if err := inst.Handler(c, inst); err != nil {
		return fmt.Errorf("execution failed at %08X: %w", addr, err)
	}
	return nil
}
