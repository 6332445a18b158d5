package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/jmchacon/sim6502/memory"
)

func newChip(t *testing.T) *Chip {
	t.Helper()
	c, err := Init(&ChipDef{Ram: memory.NewRAM()})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return c
}

func TestLoadStoreRoundTrip(t *testing.T) {
	c := newChip(t)
	c.Poke(0x0200, 0x42)
	c.PC = 0x9000
	// LDA $0200
	c.Poke(0x9000, 0xAD)
	c.Poke(0x9001, 0x00)
	c.Poke(0x9002, 0x02)
	// STA $0201
	c.Poke(0x9003, 0x8D)
	c.Poke(0x9004, 0x01)
	c.Poke(0x9005, 0x02)

	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step (LDA): %v", err)
	}
	if cycles != 4 {
		t.Errorf("LDA cycles = %d, want 4", cycles)
	}
	if c.A != 0x42 {
		t.Errorf("A = %02X, want 0x42", c.A)
	}
	if c.flag(PZero) || c.flag(PNegative) {
		t.Errorf("P = %02X, want Z=0 N=0", c.P)
	}

	cycles, err = c.Step()
	if err != nil {
		t.Fatalf("Step (STA): %v", err)
	}
	if cycles != 4 {
		t.Errorf("STA cycles = %d, want 4", cycles)
	}
	if got := c.Peek(0x0201); got != 0x42 {
		t.Errorf("mem[0x0201] = %02X, want 0x42", got)
	}
}

func TestADCBinaryOverflow(t *testing.T) {
	c := newChip(t)
	c.A = 0x50
	c.PC = 0x9000
	c.Poke(0x9000, 0x69) // ADC #
	c.Poke(0x9001, 0x50)

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0xA0 {
		t.Errorf("A = %02X, want 0xA0", c.A)
	}
	if !c.flag(PNegative) {
		t.Error("N flag not set")
	}
	if !c.flag(POverflow) {
		t.Error("V flag not set")
	}
	if c.flag(PCarry) {
		t.Error("C flag set, want clear")
	}
	if c.flag(PZero) {
		t.Error("Z flag set, want clear")
	}
}

func TestADCDecimal(t *testing.T) {
	c := newChip(t)
	c.A = 0x15
	c.P |= PDecimal
	c.PC = 0x9000
	c.Poke(0x9000, 0x69) // ADC #
	c.Poke(0x9001, 0x27)

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x42 {
		t.Errorf("A = %02X, want 0x42", c.A)
	}
	if c.flag(PCarry) {
		t.Error("C flag set, want clear")
	}
}

func TestJMPIndirectBug(t *testing.T) {
	c := newChip(t)
	c.Poke(0x30FF, 0x40)
	c.Poke(0x3000, 0x80)
	c.Poke(0x3100, 0x50)
	c.PC = 0x9000
	c.Poke(0x9000, 0x6C) // JMP (ind)
	c.Poke(0x9001, 0xFF)
	c.Poke(0x9002, 0x30)

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x8040 {
		t.Errorf("PC = %04X, want 0x8040", c.PC)
	}
}

func TestBranchPageCrossCycles(t *testing.T) {
	c := newChip(t)
	c.P |= PZero
	c.PC = 0x00FD
	c.Poke(0x00FD, 0xF0) // BEQ
	c.Poke(0x00FE, 0x04) // +4

	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x0103 {
		t.Errorf("PC = %04X, want 0x0103", c.PC)
	}
	if cycles != 4 {
		t.Errorf("cycles = %d, want 4", cycles)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c := newChip(t)
	c.PC = 0x8000
	c.SP = 0xFF
	c.Poke(0x8000, 0x20) // JSR
	c.Poke(0x8001, 0x00)
	c.Poke(0x8002, 0x90)
	c.Poke(0x9000, 0x60) // RTS

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step (JSR): %v", err)
	}
	if diff := deep.Equal(c.PC, uint16(0x9000)); diff != nil {
		t.Errorf("PC after JSR: %v\nstate: %s", diff, spew.Sdump(c))
	}
	if got := c.Peek(0x01FF); got != 0x80 {
		t.Errorf("mem[0x01FF] = %02X, want 0x80", got)
	}
	if got := c.Peek(0x01FE); got != 0x02 {
		t.Errorf("mem[0x01FE] = %02X, want 0x02", got)
	}
	if c.SP != 0xFD {
		t.Errorf("SP after JSR = %02X, want 0xFD", c.SP)
	}

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step (RTS): %v", err)
	}
	if c.PC != 0x8003 {
		t.Errorf("PC after RTS = %04X, want 0x8003", c.PC)
	}
	if c.SP != 0xFF {
		t.Errorf("SP after RTS = %02X, want 0xFF", c.SP)
	}
}

func TestCMPEqualSetsZeroCarryNotNegative(t *testing.T) {
	c := newChip(t)
	c.A = 0x37
	c.PC = 0x9000
	c.Poke(0x9000, 0xC9) // CMP #
	c.Poke(0x9001, 0x37)

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !c.flag(PZero) || !c.flag(PCarry) || c.flag(PNegative) {
		t.Errorf("P = %02X, want Z=1 C=1 N=0", c.P)
	}
}

func TestStackPushPullRoundTrip(t *testing.T) {
	tests := []uint8{0x00, 0x42, 0xFF, 0x80}
	for _, b := range tests {
		c := newChip(t)
		c.SP = 0xFD
		startSP := c.SP
		c.push(b)
		if c.SP != startSP-1 {
			t.Errorf("push(%02X): SP = %02X, want %02X", b, c.SP, startSP-1)
		}
		got := c.pull()
		if got != b {
			t.Errorf("pull() = %02X, want %02X", got, b)
		}
		if c.SP != startSP {
			t.Errorf("pull(): SP = %02X, want %02X", c.SP, startSP)
		}
	}
}

func TestPLPForcesBreakAndUnused(t *testing.T) {
	c := newChip(t)
	c.SP = 0xFD
	c.push(0x00) // all flags clear, including B and U
	c.PC = 0x9000
	c.Poke(0x9000, 0x28) // PLP

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !c.flag(PUnused) {
		t.Error("U flag not forced set by PLP")
	}
	if c.flag(PBreak) {
		t.Error("B flag set by PLP, want clear")
	}
}

func TestPHPForcesBreak(t *testing.T) {
	c := newChip(t)
	c.SP = 0xFF
	c.P = 0x00
	c.PC = 0x9000
	c.Poke(0x9000, 0x08) // PHP

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	got := c.Peek(0x01FF)
	if got&PBreak == 0 {
		t.Errorf("pushed status = %02X, want B bit set", got)
	}
}

func TestCyclesNeverExceedBaseWhenBaseIsSeven(t *testing.T) {
	c := newChip(t)
	c.PC = 0x9000
	c.X = 0xFF
	// DEC abs,X forces a page-cross candidate but base cycles is 7.
	c.Poke(0x9000, 0xDE) // DEC abs,X
	c.Poke(0x9001, 0x01)
	c.Poke(0x9002, 0x90)

	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 7 {
		t.Errorf("cycles = %d, want 7 (no page-cross penalty for base==7)", cycles)
	}
}

func TestIllegalNOPAdvancesByTrueLength(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		length uint16
	}{
		{"one byte illegal NOP", 0x1A, 1},
		{"two byte immediate illegal NOP", 0x80, 2},
		{"three byte absolute illegal NOP", 0x0C, 3},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := newChip(t)
			c.PC = 0x9000
			c.Poke(0x9000, test.opcode)
			if _, err := c.Step(); err != nil {
				t.Fatalf("Step: %v", err)
			}
			if c.PC != 0x9000+test.length {
				t.Errorf("PC = %04X, want %04X", c.PC, 0x9000+test.length)
			}
		})
	}
}
