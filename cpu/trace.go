package cpu

import (
	"fmt"
	"strings"
)

// Trace formats the instruction about to execute at the chip's current PC
// in the style of the original simulator's verbose step output:
//
//	PPPP  BB BB BB   MNEMONIC                  A:AA X:XX Y:YY P:PP SP:SS CYC:CCC
//
// CYC wraps the running cycle counter the way the original tracked PPU-like
// dot position: (total_cycles*3) % 341. It must be called before Step, since
// it reads operand bytes relative to the not-yet-advanced PC.
func (c *Chip) Trace() string {
	op := c.Peek(c.PC)
	entry := &opcodeTable[op]
	length := modeLength[entry.mode]

	bytes := make([]string, 3)
	for i := 0; i < 3; i++ {
		if i < length {
			bytes[i] = fmt.Sprintf("%02X", c.Peek(c.PC+uint16(i)))
		} else {
			bytes[i] = "  "
		}
	}

	cyc := (c.totalCycles * 3) % 341

	return fmt.Sprintf("%04X  %s %s %s   %-26s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%03d",
		c.PC, bytes[0], bytes[1], bytes[2], strings.ToUpper(entry.mnemonic),
		c.A, c.X, c.Y, c.P, c.SP, cyc)
}
