package cpu

// opcodeEntry is one row of the 256-entry dispatch table: the trace
// mnemonic, the handler that implements it, the addressing mode used to
// resolve its operand, and its base cycle count before any page-cross or
// branch-taken penalty.
type opcodeEntry struct {
	mnemonic string
	handler  handlerFunc
	mode     addrMode
	cycles   uint8
}

// opcodeTable is indexed by opcode byte. Every illegal/unofficial opcode
// maps to iNOP with the addressing mode and cycle count that matches its
// real hardware behavior, so PC advancement and timing stay correct even
// though its side effects collapse to a no-op.
var opcodeTable = [256]opcodeEntry{
	0x00: {"BRK", iBRK, modeIMPL, 7},
	0x01: {"ORA", iORA, modeXIND, 6},
	0x02: {"NOP", iNOP, modeIMPL, 2},
	0x03: {"NOP", iNOP, modeIMPL, 8},
	0x04: {"NOP", iNOP, modeZP, 3},
	0x05: {"ORA", iORA, modeZP, 3},
	0x06: {"ASL", iASL, modeZP, 5},
	0x07: {"NOP", iNOP, modeIMPL, 5},
	0x08: {"PHP", iPHP, modeIMPL, 3},
	0x09: {"ORA", iORA, modeIMM, 2},
	0x0A: {"ASL", iASL, modeACC, 2},
	0x0B: {"NOP", iNOP, modeIMPL, 2},
	0x0C: {"NOP", iNOP, modeABS, 4},
	0x0D: {"ORA", iORA, modeABS, 4},
	0x0E: {"ASL", iASL, modeABS, 6},
	0x0F: {"NOP", iNOP, modeIMPL, 6},
	0x10: {"BPL", iBPL, modeREL, 2},
	0x11: {"ORA", iORA, modeINDY, 5},
	0x12: {"NOP", iNOP, modeIMPL, 2},
	0x13: {"NOP", iNOP, modeIMPL, 8},
	0x14: {"NOP", iNOP, modeZP, 4},
	0x15: {"ORA", iORA, modeZPX, 4},
	0x16: {"ASL", iASL, modeZPX, 6},
	0x17: {"NOP", iNOP, modeIMPL, 6},
	0x18: {"CLC", iCLC, modeIMPL, 2},
	0x19: {"ORA", iORA, modeABSY, 4},
	0x1A: {"NOP", iNOP, modeIMPL, 2},
	0x1B: {"NOP", iNOP, modeIMPL, 7},
	0x1C: {"NOP", iNOP, modeABSX, 4},
	0x1D: {"ORA", iORA, modeABSX, 4},
	0x1E: {"ASL", iASL, modeABSX, 7},
	0x1F: {"NOP", iNOP, modeIMPL, 7},
	0x20: {"JSR", iJSR, modeABS, 6},
	0x21: {"AND", iAND, modeXIND, 6},
	0x22: {"NOP", iNOP, modeIMPL, 2},
	0x23: {"NOP", iNOP, modeIMPL, 8},
	0x24: {"BIT", iBIT, modeZP, 3},
	0x25: {"AND", iAND, modeZP, 3},
	0x26: {"ROL", iROL, modeZP, 5},
	0x27: {"NOP", iNOP, modeIMPL, 5},
	0x28: {"PLP", iPLP, modeIMPL, 4},
	0x29: {"AND", iAND, modeIMM, 2},
	0x2A: {"ROL", iROL, modeACC, 2},
	0x2B: {"NOP", iNOP, modeIMPL, 2},
	0x2C: {"BIT", iBIT, modeABS, 4},
	0x2D: {"AND", iAND, modeABS, 4},
	0x2E: {"ROL", iROL, modeABS, 6},
	0x2F: {"NOP", iNOP, modeIMPL, 6},
	0x30: {"BMI", iBMI, modeREL, 2},
	0x31: {"AND", iAND, modeINDY, 5},
	0x32: {"NOP", iNOP, modeIMPL, 2},
	0x33: {"NOP", iNOP, modeIMPL, 8},
	0x34: {"NOP", iNOP, modeZP, 4},
	0x35: {"AND", iAND, modeZPX, 4},
	0x36: {"ROL", iROL, modeZPX, 6},
	0x37: {"NOP", iNOP, modeIMPL, 6},
	0x38: {"SEC", iSEC, modeIMPL, 2},
	0x39: {"AND", iAND, modeABSY, 4},
	0x3A: {"NOP", iNOP, modeIMPL, 2},
	0x3B: {"NOP", iNOP, modeIMPL, 7},
	0x3C: {"NOP", iNOP, modeABSX, 4},
	0x3D: {"AND", iAND, modeABSX, 4},
	0x3E: {"ROL", iROL, modeABSX, 7},
	0x3F: {"NOP", iNOP, modeIMPL, 7},
	0x40: {"RTI", iRTI, modeIMPL, 6},
	0x41: {"EOR", iEOR, modeXIND, 6},
	0x42: {"NOP", iNOP, modeIMPL, 2},
	0x43: {"NOP", iNOP, modeIMPL, 8},
	0x44: {"NOP", iNOP, modeZP, 3},
	0x45: {"EOR", iEOR, modeZP, 3},
	0x46: {"LSR", iLSR, modeZP, 5},
	0x47: {"NOP", iNOP, modeIMPL, 5},
	0x48: {"PHA", iPHA, modeIMPL, 3},
	0x49: {"EOR", iEOR, modeIMM, 2},
	0x4A: {"LSR", iLSR, modeACC, 2},
	0x4B: {"NOP", iNOP, modeIMPL, 2},
	0x4C: {"JMP", iJMP, modeABS, 3},
	0x4D: {"EOR", iEOR, modeABS, 4},
	0x4E: {"LSR", iLSR, modeABS, 6},
	0x4F: {"NOP", iNOP, modeIMPL, 6},
	0x50: {"BVC", iBVC, modeREL, 2},
	0x51: {"EOR", iEOR, modeINDY, 5},
	0x52: {"NOP", iNOP, modeIMPL, 2},
	0x53: {"NOP", iNOP, modeIMPL, 8},
	0x54: {"NOP", iNOP, modeZP, 4},
	0x55: {"EOR", iEOR, modeZPX, 4},
	0x56: {"LSR", iLSR, modeZPX, 6},
	0x57: {"NOP", iNOP, modeIMPL, 6},
	0x58: {"CLI", iCLI, modeIMPL, 2},
	0x59: {"EOR", iEOR, modeABSY, 4},
	0x5A: {"NOP", iNOP, modeIMPL, 2},
	0x5B: {"NOP", iNOP, modeIMPL, 7},
	0x5C: {"NOP", iNOP, modeABSX, 4},
	0x5D: {"EOR", iEOR, modeABSX, 4},
	0x5E: {"LSR", iLSR, modeABSX, 7},
	0x5F: {"NOP", iNOP, modeIMPL, 7},
	0x60: {"RTS", iRTS, modeIMPL, 6},
	0x61: {"ADC", iADC, modeXIND, 6},
	0x62: {"NOP", iNOP, modeIMPL, 2},
	0x63: {"NOP", iNOP, modeIMPL, 8},
	0x64: {"NOP", iNOP, modeZP, 3},
	0x65: {"ADC", iADC, modeZP, 3},
	0x66: {"ROR", iROR, modeZP, 5},
	0x67: {"NOP", iNOP, modeIMPL, 5},
	0x68: {"PLA", iPLA, modeIMPL, 4},
	0x69: {"ADC", iADC, modeIMM, 2},
	0x6A: {"ROR", iROR, modeACC, 2},
	0x6B: {"NOP", iNOP, modeIMPL, 2},
	0x6C: {"JMP", iJMP, modeJMPINDBUG, 5},
	0x6D: {"ADC", iADC, modeABS, 4},
	0x6E: {"ROR", iROR, modeABS, 6},
	0x6F: {"NOP", iNOP, modeIMPL, 6},
	0x70: {"BVS", iBVS, modeREL, 2},
	0x71: {"ADC", iADC, modeINDY, 5},
	0x72: {"NOP", iNOP, modeIMPL, 2},
	0x73: {"NOP", iNOP, modeIMPL, 8},
	0x74: {"NOP", iNOP, modeZP, 4},
	0x75: {"ADC", iADC, modeZPX, 4},
	0x76: {"ROR", iROR, modeZPX, 6},
	0x77: {"NOP", iNOP, modeIMPL, 6},
	0x78: {"SEI", iSEI, modeIMPL, 2},
	0x79: {"ADC", iADC, modeABSY, 4},
	0x7A: {"NOP", iNOP, modeIMPL, 2},
	0x7B: {"NOP", iNOP, modeIMPL, 7},
	0x7C: {"NOP", iNOP, modeABSX, 4},
	0x7D: {"ADC", iADC, modeABSX, 4},
	0x7E: {"ROR", iROR, modeABSX, 7},
	0x7F: {"NOP", iNOP, modeIMPL, 7},
	0x80: {"NOP", iNOP, modeIMM, 2},
	0x81: {"STA", iSTA, modeXIND, 6},
	0x82: {"NOP", iNOP, modeIMPL, 2},
	0x83: {"NOP", iNOP, modeIMPL, 6},
	0x84: {"STY", iSTY, modeZP, 3},
	0x85: {"STA", iSTA, modeZP, 3},
	0x86: {"STX", iSTX, modeZP, 3},
	0x87: {"NOP", iNOP, modeIMPL, 3},
	0x88: {"DEY", iDEY, modeIMPL, 2},
	0x89: {"NOP", iNOP, modeIMPL, 2},
	0x8A: {"TXA", iTXA, modeIMPL, 2},
	0x8B: {"NOP", iNOP, modeIMPL, 2},
	0x8C: {"STY", iSTY, modeABS, 4},
	0x8D: {"STA", iSTA, modeABS, 4},
	0x8E: {"STX", iSTX, modeABS, 4},
	0x8F: {"NOP", iNOP, modeIMPL, 4},
	0x90: {"BCC", iBCC, modeREL, 2},
	0x91: {"STA", iSTA, modeINDY, 6},
	0x92: {"NOP", iNOP, modeIMPL, 2},
	0x93: {"NOP", iNOP, modeIMPL, 6},
	0x94: {"STY", iSTY, modeZPX, 4},
	0x95: {"STA", iSTA, modeZPX, 4},
	0x96: {"STX", iSTX, modeZPY, 4},
	0x97: {"NOP", iNOP, modeIMPL, 4},
	0x98: {"TYA", iTYA, modeIMPL, 2},
	0x99: {"STA", iSTA, modeABSY, 5},
	0x9A: {"TXS", iTXS, modeIMPL, 2},
	0x9B: {"NOP", iNOP, modeIMPL, 5},
	0x9C: {"NOP", iNOP, modeIMPL, 5},
	0x9D: {"STA", iSTA, modeABSX, 5},
	0x9E: {"NOP", iNOP, modeIMPL, 5},
	0x9F: {"NOP", iNOP, modeIMPL, 5},
	0xA0: {"LDY", iLDY, modeIMM, 2},
	0xA1: {"LDA", iLDA, modeXIND, 6},
	0xA2: {"LDX", iLDX, modeIMM, 2},
	0xA3: {"NOP", iNOP, modeIMPL, 6},
	0xA4: {"LDY", iLDY, modeZP, 3},
	0xA5: {"LDA", iLDA, modeZP, 3},
	0xA6: {"LDX", iLDX, modeZP, 3},
	0xA7: {"NOP", iNOP, modeIMPL, 3},
	0xA8: {"TAY", iTAY, modeIMPL, 2},
	0xA9: {"LDA", iLDA, modeIMM, 2},
	0xAA: {"TAX", iTAX, modeIMPL, 2},
	0xAB: {"NOP", iNOP, modeIMPL, 2},
	0xAC: {"LDY", iLDY, modeABS, 4},
	0xAD: {"LDA", iLDA, modeABS, 4},
	0xAE: {"LDX", iLDX, modeABS, 4},
	0xAF: {"NOP", iNOP, modeIMPL, 4},
	0xB0: {"BCS", iBCS, modeREL, 2},
	0xB1: {"LDA", iLDA, modeINDY, 5},
	0xB2: {"NOP", iNOP, modeIMPL, 2},
	0xB3: {"NOP", iNOP, modeIMPL, 5},
	0xB4: {"LDY", iLDY, modeZPX, 4},
	0xB5: {"LDA", iLDA, modeZPX, 4},
	0xB6: {"LDX", iLDX, modeZPY, 4},
	0xB7: {"NOP", iNOP, modeIMPL, 4},
	0xB8: {"CLV", iCLV, modeIMPL, 2},
	0xB9: {"LDA", iLDA, modeABSY, 4},
	0xBA: {"TSX", iTSX, modeIMPL, 2},
	0xBB: {"NOP", iNOP, modeIMPL, 4},
	0xBC: {"LDY", iLDY, modeABSX, 4},
	0xBD: {"LDA", iLDA, modeABSX, 4},
	0xBE: {"LDX", iLDX, modeABSY, 4},
	0xBF: {"NOP", iNOP, modeIMPL, 4},
	0xC0: {"CPY", iCPY, modeIMM, 2},
	0xC1: {"CMP", iCMP, modeXIND, 6},
	0xC2: {"NOP", iNOP, modeIMPL, 2},
	0xC3: {"NOP", iNOP, modeIMPL, 8},
	0xC4: {"CPY", iCPY, modeZP, 3},
	0xC5: {"CMP", iCMP, modeZP, 3},
	0xC6: {"DEC", iDEC, modeZP, 5},
	0xC7: {"NOP", iNOP, modeIMPL, 5},
	0xC8: {"INY", iINY, modeIMPL, 2},
	0xC9: {"CMP", iCMP, modeIMM, 2},
	0xCA: {"DEX", iDEX, modeIMPL, 2},
	0xCB: {"NOP", iNOP, modeIMPL, 2},
	0xCC: {"CPY", iCPY, modeABS, 4},
	0xCD: {"CMP", iCMP, modeABS, 4},
	0xCE: {"DEC", iDEC, modeABS, 6},
	0xCF: {"NOP", iNOP, modeIMPL, 6},
	0xD0: {"BNE", iBNE, modeREL, 2},
	0xD1: {"CMP", iCMP, modeINDY, 5},
	0xD2: {"NOP", iNOP, modeIMPL, 2},
	0xD3: {"NOP", iNOP, modeIMPL, 8},
	0xD4: {"NOP", iNOP, modeZP, 4},
	0xD5: {"CMP", iCMP, modeZPX, 4},
	0xD6: {"DEC", iDEC, modeZPX, 6},
	0xD7: {"NOP", iNOP, modeIMPL, 6},
	0xD8: {"CLD", iCLD, modeIMPL, 2},
	0xD9: {"CMP", iCMP, modeABSY, 4},
	0xDA: {"NOP", iNOP, modeIMPL, 2},
	0xDB: {"NOP", iNOP, modeIMPL, 7},
	0xDC: {"NOP", iNOP, modeABSX, 4},
	0xDD: {"CMP", iCMP, modeABSX, 4},
	0xDE: {"DEC", iDEC, modeABSX, 7},
	0xDF: {"NOP", iNOP, modeIMPL, 7},
	0xE0: {"CPX", iCPX, modeIMM, 2},
	0xE1: {"SBC", iSBC, modeXIND, 6},
	0xE2: {"NOP", iNOP, modeIMPL, 2},
	0xE3: {"NOP", iNOP, modeIMPL, 8},
	0xE4: {"CPX", iCPX, modeZP, 3},
	0xE5: {"SBC", iSBC, modeZP, 3},
	0xE6: {"INC", iINC, modeZP, 5},
	0xE7: {"NOP", iNOP, modeIMPL, 5},
	0xE8: {"INX", iINX, modeIMPL, 2},
	0xE9: {"SBC", iSBC, modeIMM, 2},
	0xEA: {"NOP", iNOP, modeIMPL, 2},
	0xEB: {"NOP", iNOP, modeIMPL, 2},
	0xEC: {"CPX", iCPX, modeABS, 4},
	0xED: {"SBC", iSBC, modeABS, 4},
	0xEE: {"INC", iINC, modeABS, 6},
	0xEF: {"NOP", iNOP, modeIMPL, 6},
	0xF0: {"BEQ", iBEQ, modeREL, 2},
	0xF1: {"SBC", iSBC, modeINDY, 5},
	0xF2: {"NOP", iNOP, modeIMPL, 2},
	0xF3: {"NOP", iNOP, modeIMPL, 8},
	0xF4: {"NOP", iNOP, modeZP, 4},
	0xF5: {"SBC", iSBC, modeZPX, 4},
	0xF6: {"INC", iINC, modeZPX, 6},
	0xF7: {"NOP", iNOP, modeIMPL, 6},
	0xF8: {"SED", iSED, modeIMPL, 2},
	0xF9: {"SBC", iSBC, modeABSY, 4},
	0xFA: {"NOP", iNOP, modeIMPL, 2},
	0xFB: {"NOP", iNOP, modeIMPL, 7},
	0xFC: {"NOP", iNOP, modeABSX, 4},
	0xFD: {"SBC", iSBC, modeABSX, 4},
	0xFE: {"INC", iINC, modeABSX, 7},
	0xFF: {"NOP", iNOP, modeIMPL, 7},
}
