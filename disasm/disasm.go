// Package disasm renders a compiled word stream back into ARM A32
// assembly text. It exists purely as an inspection aid for the
// standalone command-line tools; nothing in the compiler or the
// interpreter depends on it.
package disasm

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Disassemble renders code, a stream of 32-bit little-endian words, as
// one assembly line per instruction. It trusts a linear sweep because
// every pseudo-instruction this compiler emits expands to a fixed
// width: one word, or for a load-literal trampoline, three consecutive
// words. There is no variable-length encoding whose boundaries depend
// on bytes read earlier, so unlike a general-purpose disassembler this
// one never needs a control-flow pass to tell code from data.
func Disassemble(code []byte) (string, error) {
	if len(code)%4 != 0 {
		return "", fmt.Errorf("disasm: code length %d is not a multiple of 4", len(code))
	}

	var out strings.Builder
	for pc := 0; pc < len(code); {
		addr := uint32(pc)
		word := binary.LittleEndian.Uint32(code[pc:])

		if isLoadLiteralTrampoline(word) && pc+12 <= len(code) {
			target := regName((word >> 12) & 0xF)
			literal := binary.LittleEndian.Uint32(code[pc+8:])
			fmt.Fprintf(&out, "%04X  ldr    %s, =0x%X\n", addr, target, literal)
			pc += 12
			continue
		}

		fmt.Fprintf(&out, "%04X  %s\n", addr, decodeOne(word))
		pc += 4
	}
	return out.String(), nil
}

func isLoadLiteralTrampoline(word uint32) bool {
	return word&0xFFFF0FFF == 0xE59F0000
}

// decodeOne renders a single word whose meaning doesn't depend on its
// neighbors. It mirrors the mask-and-field-extraction shapes the
// interpreter's own decoder matches, so the two never drift apart on
// what counts as a recognized instruction.
func decodeOne(word uint32) string {
	switch {
	case word&0xFFFF0000 == 0xE8BD0000:
		return fmt.Sprintf("pop    {%s}", regListText(word&0xFFFF))

	case word&0xFFFF0FFF == 0xE52D0004:
		return fmt.Sprintf("push   {%s}", regName((word>>12)&0xF))

	case word&0xFFFF0FFF == 0xE49D0004:
		return fmt.Sprintf("pop    {%s}", regName((word>>12)&0xF))

	case word&0xFFF00FFF == 0xE5900000:
		target := regName((word >> 12) & 0xF)
		base := regName((word >> 16) & 0xF)
		return fmt.Sprintf("ldr    %s, [%s]", target, base)

	case word&0xFFF00FFF == 0xE0800000:
		x := regName((word >> 12) & 0xF)
		y := regName((word >> 16) & 0xF)
		return fmt.Sprintf("add    %s, %s, %s", x, y, x)

	case word&0xFFF00FFF == 0xE0400000:
		x := regName((word >> 12) & 0xF)
		y := regName((word >> 16) & 0xF)
		return fmt.Sprintf("sub    %s, %s, %s", x, y, x)

	case word&0xFFF0F0F0 == 0xE0000090:
		x := (word >> 16) & 0xF
		if x == (word>>8)&0xF {
			return fmt.Sprintf("mul    %s, %s, %s", regName(x), regName(x), regName(word&0xF))
		}

	case word&0xFFFFFFF0 == 0xE12FFF30:
		return fmt.Sprintf("blx    %s", regName(word&0xF))

	case word&0xFF000000 == 0xEA000000:
		offset := int32(word&0x00FFFFFF) << 2
		if word&0x00800000 != 0 {
			offset |= ^int32(0x3FFFFFF)
		}
		return fmt.Sprintf("b      #%+d", offset+8)
	}

	return fmt.Sprintf(".word  0x%08X", word)
}

func regName(n uint32) string {
	switch n {
	case 13:
		return "sp"
	case 14:
		return "lr"
	case 15:
		return "pc"
	default:
		return fmt.Sprintf("r%d", n)
	}
}

// regListText renders a pop register-list bitmask as a comma-joined,
// ascending list of register names, collapsing contiguous r0..rN runs
// the way a hand-written "pop {r0-r2}" would read rather than spelling
// out every register.
func regListText(mask uint32) string {
	var names []string
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		if start == end {
			names = append(names, regName(uint32(start)))
		} else {
			names = append(names, fmt.Sprintf("%s-%s", regName(uint32(start)), regName(uint32(end))))
		}
		start = -1
	}
	for i := 0; i < 16; i++ {
		if mask&(1<<uint(i)) != 0 {
			if start < 0 {
				start = i
			}
		} else {
			flush(i - 1)
		}
	}
	flush(15)
	return strings.Join(names, ", ")
}
