package arm

import "encoding/binary"

// ReadU32 reads a little-endian 32-bit word from memory at addr.
func (c *CPU) ReadU32(addr uint32) uint32 {
	return binary.LittleEndian.Uint32(c.Mem[addr:])
}

// WriteU32 writes a little-endian 32-bit word to memory at addr.
func (c *CPU) WriteU32(addr uint32, v uint32) {
	binary.LittleEndian.PutUint32(c.Mem[addr:], v)
}
