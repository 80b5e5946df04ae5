package m68k

// Decode consumes c.ir (already fetched as the opcode word, with c.reg.PC
// pointing at the first potential extension word), looks its Kind up in
// kindTable, and produces a fully decoded Instruction. It is
// the single entry point used by both the interpreter driver and the
// disassembler (spec.md §4.2: "decode and execute are separate stages").
func (c *CPU) Decode() Instruction {
	opcode := c.ir
	pc := c.prevPC
	kind := kindTable[opcode]

	inst := Instruction{Opcode: opcode, PC: pc, Kind: kind}
	if kind == KindUnknown {
		inst.Kind = KindIllegal
		return inst
	}

	switch kind {
	case KindMOVE:
		inst.Operands = c.decodeMOVE(opcode)
	case KindMOVEA:
		inst.Operands = c.decodeMOVEA(opcode)
	case KindMOVEQ:
		inst.Operands = c.decodeMOVEQ(opcode)
	case KindMOVEP:
		inst.Operands = c.decodeMOVEP(opcode)
	case KindLEA:
		inst.Operands = c.decodeLEA(opcode)
	case KindPEA:
		inst.Operands = c.decodePEA(opcode)
	case KindMOVEM:
		inst.Operands = c.decodeMOVEM(opcode)
	case KindEXG:
		inst.Operands = c.decodeEXG(opcode)
	case KindSWAP:
		inst.Operands = Operands{Reg: regField(opcode)}
	case KindMOVEtoCCR, KindMOVEtoSR:
		inst.Operands = c.decodeMOVEtoStatus(opcode, Word)
	case KindMOVEfromSR:
		inst.Operands = c.decodeMOVEfromStatus(opcode)
	case KindMOVEUSP:
		inst.Operands = Operands{Reg: regField(opcode), MemToReg: opcode&0x8 != 0}

	case KindADD, KindSUB, KindAND, KindOR:
		inst.Operands = c.decodeRegEA(opcode)
	case KindEOR:
		inst.Operands = c.decodeRegEAFixedDir(opcode, DirToEA)
	case KindCMP:
		inst.Operands = c.decodeRegEAFixedDir(opcode, DirToReg)
	case KindADDA, KindSUBA, KindCMPA:
		inst.Operands = c.decodeAddrEA(opcode)
	case KindADDI, KindSUBI, KindANDI, KindORI, KindEORI, KindCMPI:
		inst.Operands = c.decodeImmEA(opcode)
	case KindANDItoCCR, KindORItoCCR, KindEORItoCCR:
		inst.Operands = Operands{Size: Byte, Imm: int32(c.fetchPC() & 0xFF)}
	case KindANDItoSR, KindORItoSR, KindEORItoSR:
		inst.Operands = Operands{Size: Word, Imm: int32(c.fetchPC())}
	case KindADDQ, KindSUBQ:
		inst.Operands = c.decodeQuick(opcode)
	case KindADDX, KindSUBX:
		inst.Operands = c.decodeXOp(opcode)
	case KindCMPM:
		inst.Operands = c.decodeCMPM(opcode)
	case KindMULU, KindMULS, KindDIVU, KindDIVS, KindCHK:
		inst.Operands = c.decodeRegEAUnsized(opcode, Word)
	case KindNEG, KindNEGX, KindCLR, KindTST, KindNOT:
		inst.Operands = c.decodeUnary(opcode)
	case KindEXT:
		inst.Operands = Operands{Reg: regField(opcode), Size: Word}
		if opcode&0x40 != 0 {
			inst.Operands.Size = Long
		}

	case KindLSL, KindLSR, KindASL, KindASR, KindROL, KindROR, KindROXL, KindROXR:
		inst.Operands = c.decodeShift(opcode)

	case KindBTST, KindBCHG, KindBCLR, KindBSET:
		inst.Operands = c.decodeBitOp(opcode)

	case KindABCD, KindSBCD:
		inst.Operands = c.decodeXReg(opcode)
	case KindNBCD:
		inst.Operands = Operands{Dst: c.decodeOperand(modeField(opcode), regField(opcode), Byte), Size: Byte}

	case KindBcc, KindBRA, KindBSR:
		inst.Operands = c.decodeBranch(opcode)
	case KindDBcc:
		inst.Operands = Operands{Cond: Condition(opcode>>8&0xF), Reg: regField(opcode), Disp: int32(int16(c.fetchPC()))}
	case KindJMP, KindJSR:
		inst.Operands = Operands{Dst: c.decodeOperand(modeField(opcode), regField(opcode), Long)}
	case KindScc:
		inst.Operands = Operands{Cond: Condition(opcode >> 8 & 0xF), Dst: c.decodeOperand(modeField(opcode), regField(opcode), Byte)}
	case KindRTS, KindRTE, KindRTR, KindNOP, KindTRAPV, KindRESET:
		// no operands to decode

	case KindTRAP:
		inst.Operands = Operands{Imm: int32(opcode & 0xF)}
	case KindSTOP:
		inst.Operands = Operands{Imm: int32(c.fetchPC())}
	case KindTAS:
		inst.Operands = Operands{Dst: c.decodeOperand(modeField(opcode), regField(opcode), Byte), Size: Byte}
	case KindLINK:
		inst.Operands = Operands{Reg: regField(opcode), Disp: int32(int16(c.fetchPC()))}
	case KindUNLK:
		inst.Operands = Operands{Reg: regField(opcode)}
	}

	return inst
}

// --- opcode field helpers ---

func modeField(opcode uint16) uint8 { return uint8(opcode >> 3 & 7) }
func regField(opcode uint16) uint8  { return uint8(opcode & 7) }

// sizeField2 decodes the common 2-bit size encoding (00=B,01=W,10=L) found
// in MOVE/immediate/shift-memory opcodes.
func sizeField2(bits uint16) Size {
	switch bits {
	case 0:
		return Byte
	case 1:
		return Word
	default:
		return Long
	}
}

// --- data movement ---

func (c *CPU) decodeMOVE(opcode uint16) Operands {
	var sz Size
	switch opcode & 0x3000 {
	case 0x1000:
		sz = Byte
	case 0x3000:
		sz = Word
	case 0x2000:
		sz = Long
	}
	srcMode := uint8(opcode >> 3 & 7)
	srcReg := uint8(opcode & 7)
	src := c.decodeOperand(srcMode, srcReg, sz)
	dstMode := uint8(opcode >> 6 & 7)
	dstReg := uint8(opcode >> 9 & 7)
	dst := c.decodeOperand(dstMode, dstReg, sz)
	return Operands{Size: sz, Src: src, Dst: dst}
}

func (c *CPU) decodeMOVEA(opcode uint16) Operands {
	sz := Word
	if opcode&0x3000 == 0x2000 {
		sz = Long
	}
	src := c.decodeOperand(modeField(opcode), regField(opcode), sz)
	return Operands{Size: sz, Src: src, Reg: uint8(opcode >> 9 & 7)}
}

func (c *CPU) decodeMOVEQ(opcode uint16) Operands {
	return Operands{Reg: uint8(opcode >> 9 & 7), Imm: int32(int8(opcode & 0xFF)), Size: Long}
}

func (c *CPU) decodeMOVEP(opcode uint16) Operands {
	disp := int32(int16(c.fetchPC()))
	sz := Word
	if opcode&0x40 != 0 {
		sz = Long
	}
	memToReg := opcode&0x80 == 0
	return Operands{
		Reg:      uint8(opcode >> 9 & 7),
		RegY:     regField(opcode),
		Disp:     disp,
		Size:     sz,
		MemToReg: memToReg,
	}
}

func (c *CPU) decodeLEA(opcode uint16) Operands {
	src := c.decodeOperand(modeField(opcode), regField(opcode), Long)
	return Operands{Src: src, Reg: uint8(opcode >> 9 & 7), Size: Long}
}

func (c *CPU) decodePEA(opcode uint16) Operands {
	return Operands{Src: c.decodeOperand(modeField(opcode), regField(opcode), Long), Size: Long}
}

// decodeMOVEM stores the register-list mask exactly as fetched, in its
// wire bit order. Pre-decrement destinations encode that order reversed
// (bit 0=A7 .. bit 15=D0) from every other mode (bit 0=D0 .. bit 15=A7);
// execMOVEM and the disassembler apply that reversal when they map mask
// bits to registers, not here.
func (c *CPU) decodeMOVEM(opcode uint16) Operands {
	list := c.fetchPC()
	sz := Word
	if opcode&0x40 != 0 {
		sz = Long
	}
	memToReg := opcode&0x0400 != 0
	mode := modeField(opcode)
	reg := regField(opcode)
	op := c.decodeOperand(mode, reg, sz)
	return Operands{Dst: op, RegList: list, Size: sz, MemToReg: memToReg}
}

func (c *CPU) decodeEXG(opcode uint16) Operands {
	return Operands{Reg: uint8(opcode >> 9 & 7), RegY: regField(opcode), Imm: int32(opcode >> 3 & 0x1F)}
}

func (c *CPU) decodeMOVEtoStatus(opcode uint16, sz Size) Operands {
	return Operands{Src: c.decodeOperand(modeField(opcode), regField(opcode), sz), Size: sz}
}

func (c *CPU) decodeMOVEfromStatus(opcode uint16) Operands {
	return Operands{Dst: c.decodeOperand(modeField(opcode), regField(opcode), Word), Size: Word}
}

// --- arithmetic / logical, register<->ea family ---

// decodeRegEA handles the ADD/SUB/AND/OR "opmode selects direction and
// size" shape: opmode bits 8-6 of 0xx select <ea>,Dn; 1xx select Dn,<ea>
// (data-alterable <ea> only).
func (c *CPU) decodeRegEA(opcode uint16) Operands {
	dn := uint8(opcode >> 9 & 7)
	opmode := opcode >> 6 & 7
	toEA := opmode&4 != 0
	sz := sizeField2(opmode & 3)
	ea := c.decodeOperand(modeField(opcode), regField(opcode), sz)
	dnOp := Operand{Mode: AddressingMode{Tag: AMDataReg, Reg: dn}, Size: sz}
	if toEA {
		return Operands{Size: sz, Dir: DirToEA, Src: dnOp, Dst: ea, Reg: dn}
	}
	return Operands{Size: sz, Dir: DirToReg, Src: ea, Dst: dnOp, Reg: dn}
}

// decodeRegEAFixedDir is decodeRegEA for instructions whose direction is
// fixed (CMP always reads into the comparison, EOR always writes to ea).
func (c *CPU) decodeRegEAFixedDir(opcode uint16, dir Direction) Operands {
	dn := uint8(opcode >> 9 & 7)
	sz := sizeField2(opcode >> 6 & 3)
	ea := c.decodeOperand(modeField(opcode), regField(opcode), sz)
	dnOp := Operand{Mode: AddressingMode{Tag: AMDataReg, Reg: dn}, Size: sz}
	if dir == DirToEA {
		return Operands{Size: sz, Dir: dir, Src: dnOp, Dst: ea, Reg: dn}
	}
	return Operands{Size: sz, Dir: dir, Src: ea, Dst: dnOp, Reg: dn}
}

func (c *CPU) decodeAddrEA(opcode uint16) Operands {
	an := uint8(opcode >> 9 & 7)
	sz := Word
	if opcode&0x100 != 0 {
		sz = Long
	}
	src := c.decodeOperand(modeField(opcode), regField(opcode), sz)
	return Operands{Size: sz, Src: src, Reg: an}
}

func (c *CPU) decodeImmEA(opcode uint16) Operands {
	sz := sizeField2(opcode >> 6 & 3)
	var imm int32
	switch sz {
	case Byte:
		imm = int32(int8(c.fetchPC() & 0xFF))
	case Word:
		imm = int32(int16(c.fetchPC()))
	default:
		imm = int32(c.fetchPCLong())
	}
	dst := c.decodeOperand(modeField(opcode), regField(opcode), sz)
	return Operands{Size: sz, Imm: imm, Dst: dst}
}

func (c *CPU) decodeQuick(opcode uint16) Operands {
	data := uint8(opcode >> 9 & 7)
	if data == 0 {
		data = 8
	}
	sz := sizeField2(opcode >> 6 & 3)
	dst := c.decodeOperand(modeField(opcode), regField(opcode), sz)
	return Operands{Size: sz, Imm: int32(data), Dst: dst}
}

func (c *CPU) decodeXOp(opcode uint16) Operands {
	sz := sizeField2(opcode >> 6 & 3)
	rx := uint8(opcode >> 9 & 7)
	ry := regField(opcode)
	memForm := opcode&8 != 0
	if memForm {
		src := Operand{Mode: AddressingMode{Tag: AMPreDec, Reg: ry}, Size: sz}
		dst := Operand{Mode: AddressingMode{Tag: AMPreDec, Reg: rx}, Size: sz}
		return Operands{Size: sz, Src: src, Dst: dst, Reg: rx, RegY: ry, MemToReg: false}
	}
	src := Operand{Mode: AddressingMode{Tag: AMDataReg, Reg: ry}, Size: sz}
	dst := Operand{Mode: AddressingMode{Tag: AMDataReg, Reg: rx}, Size: sz}
	return Operands{Size: sz, Src: src, Dst: dst, Reg: rx, RegY: ry, MemToReg: true}
}

func (c *CPU) decodeCMPM(opcode uint16) Operands {
	sz := sizeField2(opcode >> 6 & 3)
	ax := uint8(opcode >> 9 & 7)
	ay := regField(opcode)
	src := Operand{Mode: AddressingMode{Tag: AMPostInc, Reg: ay}, Size: sz}
	dst := Operand{Mode: AddressingMode{Tag: AMPostInc, Reg: ax}, Size: sz}
	return Operands{Size: sz, Src: src, Dst: dst}
}

// decodeRegEAUnsized covers MULU/MULS/DIVU/DIVS (word source, long Dn) and
// CHK (word or long bound, per variant -- this core always uses word per
// spec.md §5's CHK definition).
func (c *CPU) decodeRegEAUnsized(opcode uint16, sz Size) Operands {
	dn := uint8(opcode >> 9 & 7)
	src := c.decodeOperand(modeField(opcode), regField(opcode), sz)
	return Operands{Size: sz, Src: src, Reg: dn}
}

func (c *CPU) decodeUnary(opcode uint16) Operands {
	sz := sizeField2(opcode >> 6 & 3)
	dst := c.decodeOperand(modeField(opcode), regField(opcode), sz)
	return Operands{Size: sz, Dst: dst}
}

// --- shift/rotate ---

func (c *CPU) decodeShift(opcode uint16) Operands {
	if opcode&0xF000 == 0xE000 && opcode&0x00C0 == 0x00C0 {
		// memory form, word-only, count is always 1.
		dst := c.decodeOperand(modeField(opcode), regField(opcode), Word)
		return Operands{Size: Word, Dst: dst, ShiftTarget: shiftTargetMemory, ShiftCount: 1}
	}
	sz := sizeField2(opcode >> 6 & 3)
	dn := regField(opcode)
	dst := Operand{Mode: AddressingMode{Tag: AMDataReg, Reg: dn}, Size: sz}
	if opcode&0x20 != 0 {
		rn := uint8(opcode >> 9 & 7)
		return Operands{Size: sz, Dst: dst, Reg: rn, ShiftTarget: shiftTargetRegCount}
	}
	count := uint8(opcode >> 9 & 7)
	if count == 0 {
		count = 8
	}
	return Operands{Size: sz, Dst: dst, ShiftCount: count, ShiftTarget: shiftTargetImmCount}
}

// --- bit manipulation ---

func (c *CPU) decodeBitOp(opcode uint16) Operands {
	dynamic := opcode&0x0100 != 0
	var reg uint8
	var imm int32
	if dynamic {
		reg = uint8(opcode >> 9 & 7)
	} else {
		imm = int32(c.fetchPC() & 0xFF)
	}
	sz := Long
	mode := modeField(opcode)
	if mode != 0 {
		sz = Byte
	}
	dst := c.decodeOperand(mode, regField(opcode), sz)
	return Operands{Dst: dst, Reg: reg, Imm: imm, Size: sz, MemToReg: dynamic}
}

// --- BCD ---

func (c *CPU) decodeXReg(opcode uint16) Operands {
	rx := uint8(opcode >> 9 & 7)
	ry := regField(opcode)
	memForm := opcode&8 != 0
	if memForm {
		src := Operand{Mode: AddressingMode{Tag: AMPreDec, Reg: ry}, Size: Byte}
		dst := Operand{Mode: AddressingMode{Tag: AMPreDec, Reg: rx}, Size: Byte}
		return Operands{Size: Byte, Src: src, Dst: dst, MemToReg: false}
	}
	src := Operand{Mode: AddressingMode{Tag: AMDataReg, Reg: ry}, Size: Byte}
	dst := Operand{Mode: AddressingMode{Tag: AMDataReg, Reg: rx}, Size: Byte}
	return Operands{Size: Byte, Src: src, Dst: dst, MemToReg: true}
}

// --- control transfer ---

func (c *CPU) decodeBranch(opcode uint16) Operands {
	disp8 := int8(opcode & 0xFF)
	var disp int32
	switch disp8 {
	case 0:
		disp = int32(int16(c.fetchPC()))
	case -1:
		disp = int32(c.fetchPCLong())
	default:
		disp = int32(disp8)
	}
	return Operands{Cond: Condition(opcode >> 8 & 0xF), Disp: disp}
}
