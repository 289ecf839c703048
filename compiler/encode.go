package compiler

import "encoding/binary"

// skipBranch is the fixed unconditional branch that jumps over the
// literal word embedded in a load-literal trampoline.
const skipBranch uint32 = 0xEA000000

// ldrLiteralBase is the ldr rT, [pc] word with rT's bits cleared.
const ldrLiteralBase uint32 = 0xE59F0000

// ldrIndirectBase is the ldr rT, [rN] word with rT and rN's bits cleared.
const ldrIndirectBase uint32 = 0xE5900000

// pushBase is the str rT, [sp, #-4]! word with rT's bits cleared.
const pushBase uint32 = 0xE52D0004

// popBase is the ldr rT, [sp], #4 word with rT's bits cleared.
const popBase uint32 = 0xE49D0004

// popRangeBase is the ldmia sp!, {...} word with the register list
// cleared.
const popRangeBase uint32 = 0xE8BD0000

// popLRReturnWord is the fixed pop {r4, pc} encoding.
const popLRReturnWord uint32 = 0xE8BD8010

// blxBase is the blx rM word with rM's bits cleared.
const blxBase uint32 = 0xE12FFF30

// Encode expands a pseudo-instruction stream into its 32-bit ARM A32
// words and returns their little-endian bytes. It is a total function:
// a well-formed stream never fails to encode.
func Encode(instrs []Instr) []byte {
	var words []uint32
	for _, in := range instrs {
		words = append(words, encodeOne(in)...)
	}

	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return buf
}

// encodeOne expands a single pseudo-instruction into one or more words.
func encodeOne(in Instr) []uint32 {
	switch v := in.(type) {
	case LoadLiteral:
		return []uint32{ldrLiteralBase | uint32(v.Target)<<12, skipBranch, v.Value}

	case LoadIndirect:
		return []uint32{ldrIndirectBase | uint32(v.Target)<<12 | uint32(v.Base)<<16}

	case PushSingle:
		return []uint32{pushBase | uint32(v.Reg)<<12}

	case PopSingle:
		return []uint32{popBase | uint32(v.Reg)<<12}

	case PopRange:
		regList := uint32(1)<<uint(v.Count) - 1
		return []uint32{popRangeBase | regList}

	case PopLRReturn:
		return []uint32{popLRReturnWord}

	case BinOp:
		return []uint32{encodeBinOp(v)}

	case BranchLinkExchange:
		return []uint32{blxBase | uint32(v.Reg)}

	default:
		panic("compiler: unreachable instruction kind in encodeOne")
	}
}
