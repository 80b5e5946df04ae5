package m68k

import "fmt"

// Assemble produces the binary encoding of inst, returning the opcode
// word followed by any extension words. It is the structural inverse of
// Decode: given an Instruction built by hand (or round-tripped through
// Decode), Assemble reconstructs the word sequence that would decode back
// to an equivalent Instruction. Invalid operand/size combinations (e.g. a
// byte-sized MOVEA, or a destination that is not alterable) are rejected
// with an error rather than silently emitting a bogus encoding (spec.md
// §6.4).
func Assemble(inst Instruction) ([]uint16, error) {
	o := inst.Operands
	switch inst.Kind {
	case KindMOVE:
		return assembleMOVE(o)
	case KindMOVEA:
		return assembleMOVEA(o)
	case KindMOVEQ:
		if o.Imm < -128 || o.Imm > 127 {
			return nil, fmt.Errorf("m68k: MOVEQ immediate %d out of range", o.Imm)
		}
		return []uint16{0x7000 | uint16(o.Reg)<<9 | uint16(o.Imm)&0xFF}, nil
	case KindLEA:
		if !controlAddressable(o.Src.Mode.Tag) {
			return nil, fmt.Errorf("m68k: LEA source must be control-addressable")
		}
		ea, ext, err := encodeEA(o.Src)
		if err != nil {
			return nil, err
		}
		return append([]uint16{0x41C0 | uint16(o.Reg)<<9 | ea}, ext...), nil
	case KindPEA:
		if !controlAddressable(o.Src.Mode.Tag) {
			return nil, fmt.Errorf("m68k: PEA source must be control-addressable")
		}
		ea, ext, err := encodeEA(o.Src)
		if err != nil {
			return nil, err
		}
		return append([]uint16{0x4840 | ea}, ext...), nil
	case KindNOP:
		return []uint16{0x4E71}, nil
	case KindRTS:
		return []uint16{0x4E75}, nil
	case KindRTE:
		return []uint16{0x4E73}, nil
	case KindRTR:
		return []uint16{0x4E77}, nil
	case KindTRAPV:
		return []uint16{0x4E76}, nil
	case KindRESET:
		return []uint16{0x4E70}, nil
	case KindTRAP:
		if o.Imm < 0 || o.Imm > 15 {
			return nil, fmt.Errorf("m68k: TRAP vector %d out of range", o.Imm)
		}
		return []uint16{0x4E40 | uint16(o.Imm)}, nil
	case KindBRA, KindBSR:
		return assembleBranch(inst.Kind, o, inst.Opcode)
	case KindBcc:
		return assembleBcc(o, inst.Opcode)
	case KindADD, KindSUB, KindAND, KindOR:
		return assembleRegEA(inst.Kind, o)
	case KindCMP:
		return assembleCMP(o)
	case KindEOR:
		return assembleEOR(o)
	case KindADDQ, KindSUBQ:
		return assembleQuick(inst.Kind, o)
	case KindCLR, KindNEG, KindNEGX, KindTST, KindNOT:
		return assembleUnary(inst.Kind, o)
	case KindSWAP:
		return []uint16{0x4840 | uint16(o.Reg)}, nil
	case KindEXT:
		base := uint16(0x4880)
		if o.Size == Long {
			base = 0x48C0
		}
		return []uint16{base | uint16(o.Reg)}, nil

	case KindADDA, KindSUBA, KindCMPA:
		return assembleAddrEA(inst.Kind, o)
	case KindADDI, KindSUBI, KindANDI, KindORI, KindEORI, KindCMPI:
		return assembleImmEA(inst.Kind, o)
	case KindANDItoCCR, KindORItoCCR, KindEORItoCCR:
		return assembleImmStatus(inst.Kind, o, true)
	case KindANDItoSR, KindORItoSR, KindEORItoSR:
		return assembleImmStatus(inst.Kind, o, false)
	case KindADDX, KindSUBX:
		return assembleXOp(inst.Kind, o)
	case KindCMPM:
		return assembleCMPM(o)
	case KindMULU, KindMULS, KindDIVU, KindDIVS:
		return assembleMulDiv(inst.Kind, o)
	case KindCHK:
		field, ext, err := encodeEA(o.Src)
		if err != nil {
			return nil, err
		}
		return append([]uint16{0x4180 | uint16(o.Reg)<<9 | field}, ext...), nil

	case KindASL, KindASR, KindLSL, KindLSR, KindROL, KindROR, KindROXL, KindROXR:
		return assembleShift(inst.Kind, o)

	case KindBTST, KindBCHG, KindBCLR, KindBSET:
		return assembleBitOp(inst.Kind, o)

	case KindABCD, KindSBCD:
		return assembleXReg(inst.Kind, o)
	case KindNBCD:
		if !dataAlterable(o.Dst.Mode.Tag) {
			return nil, fmt.Errorf("m68k: NBCD destination is not alterable")
		}
		field, ext, err := encodeEA(o.Dst)
		if err != nil {
			return nil, err
		}
		return append([]uint16{0x4800 | field}, ext...), nil

	case KindDBcc:
		if o.Disp < -32768 || o.Disp > 32767 {
			return nil, fmt.Errorf("m68k: DBcc displacement %d out of range", o.Disp)
		}
		return []uint16{0x50C8 | uint16(o.Cond)<<8 | uint16(o.Reg), uint16(int16(o.Disp))}, nil
	case KindJMP, KindJSR:
		base := uint16(0x4EC0)
		if inst.Kind == KindJSR {
			base = 0x4E80
		}
		if !controlAddressable(o.Dst.Mode.Tag) {
			return nil, fmt.Errorf("m68k: %s destination must be control-addressable", inst.Kind)
		}
		field, ext, err := encodeEA(o.Dst)
		if err != nil {
			return nil, err
		}
		return append([]uint16{base | field}, ext...), nil
	case KindScc:
		if !dataAlterable(o.Dst.Mode.Tag) {
			return nil, fmt.Errorf("m68k: Scc destination is not alterable")
		}
		field, ext, err := encodeEA(o.Dst)
		if err != nil {
			return nil, err
		}
		return append([]uint16{0x50C0 | uint16(o.Cond)<<8 | field}, ext...), nil

	case KindSTOP:
		return []uint16{0x4E72, uint16(o.Imm)}, nil
	case KindTAS:
		if !dataAlterable(o.Dst.Mode.Tag) {
			return nil, fmt.Errorf("m68k: TAS destination is not alterable")
		}
		field, ext, err := encodeEA(o.Dst)
		if err != nil {
			return nil, err
		}
		return append([]uint16{0x4AC0 | field}, ext...), nil
	case KindLINK:
		return []uint16{0x4E50 | uint16(o.Reg), uint16(int16(o.Disp))}, nil
	case KindUNLK:
		return []uint16{0x4E58 | uint16(o.Reg)}, nil

	case KindMOVEP:
		ss := uint16(4)
		if o.Size == Long {
			ss++
		}
		if !o.MemToReg {
			ss += 2
		}
		return []uint16{0x0008 | uint16(o.Reg)<<9 | ss<<6 | uint16(o.RegY), uint16(int16(o.Disp))}, nil
	case KindMOVEM:
		// o.RegList is emitted exactly as given: callers building a
		// pre-decrement MOVEM must already hand it the reversed (bit
		// 0=A7..bit 15=D0) wire-order mask, matching decodeMOVEM's
		// as-fetched convention.
		d := uint16(0)
		if o.MemToReg {
			d = 1
		}
		s := uint16(0)
		if o.Size == Long {
			s = 1
		}
		field, ext, err := encodeEA(o.Dst)
		if err != nil {
			return nil, err
		}
		words := append([]uint16{0x4880 | d<<10 | s<<6 | field}, o.RegList)
		return append(words, ext...), nil
	case KindEXG:
		return []uint16{0xC100 | uint16(o.Reg)<<9 | uint16(o.Imm)<<3 | uint16(o.RegY)}, nil
	case KindMOVEtoCCR:
		field, ext, err := encodeEA(o.Src)
		if err != nil {
			return nil, err
		}
		return append([]uint16{0x44C0 | field}, ext...), nil
	case KindMOVEtoSR:
		field, ext, err := encodeEA(o.Src)
		if err != nil {
			return nil, err
		}
		return append([]uint16{0x46C0 | field}, ext...), nil
	case KindMOVEfromSR:
		if !dataAlterable(o.Dst.Mode.Tag) {
			return nil, fmt.Errorf("m68k: MOVE from SR destination is not alterable")
		}
		field, ext, err := encodeEA(o.Dst)
		if err != nil {
			return nil, err
		}
		return append([]uint16{0x40C0 | field}, ext...), nil
	case KindMOVEUSP:
		base := uint16(0x4E60)
		if o.MemToReg {
			base = 0x4E68
		}
		return []uint16{base | uint16(o.Reg)}, nil

	default:
		return nil, fmt.Errorf("m68k: Assemble not implemented for %s", inst.Kind)
	}
}

// sizeBits2 is the inverse of sizeField2: B=00,W=01,L=10.
func sizeBits2(sz Size) (uint16, error) {
	switch sz {
	case Byte:
		return 0, nil
	case Word:
		return 1, nil
	case Long:
		return 2, nil
	default:
		return 0, fmt.Errorf("m68k: invalid size")
	}
}

func controlAddressable(tag AddressingModeTag) bool {
	switch tag {
	case AMDataReg, AMAddrReg, AMPostInc, AMPreDec, AMImmediate:
		return false
	default:
		return true
	}
}

func dataAlterable(tag AddressingModeTag) bool {
	switch tag {
	case AMAddrReg, AMPCDisp, AMPCIndex, AMImmediate:
		return false
	default:
		return true
	}
}

// encodeEA produces the 6-bit mode/reg field and any extension words for
// op's addressing mode.
func encodeEA(op Operand) (field uint16, ext []uint16, err error) {
	m := op.Mode
	switch m.Tag {
	case AMDataReg:
		return uint16(m.Reg), nil, nil
	case AMAddrReg:
		return 0o10 | uint16(m.Reg), nil, nil
	case AMIndirect:
		return 0o20 | uint16(m.Reg), nil, nil
	case AMPostInc:
		return 0o30 | uint16(m.Reg), nil, nil
	case AMPreDec:
		return 0o40 | uint16(m.Reg), nil, nil
	case AMDisp:
		return 0o50 | uint16(m.Reg), []uint16{uint16(m.Disp)}, nil
	case AMIndex:
		return 0o60 | uint16(m.Reg), []uint16{encodeBriefExt(m.Brief)}, nil
	case AMAbsShort:
		return 0o70, []uint16{uint16(m.Abs)}, nil
	case AMAbsLong:
		return 0o71, []uint16{uint16(m.Abs >> 16), uint16(m.Abs)}, nil
	case AMPCDisp:
		return 0o72, []uint16{uint16(m.Disp)}, nil
	case AMPCIndex:
		return 0o73, []uint16{encodeBriefExt(m.Brief)}, nil
	case AMImmediate:
		switch op.Size {
		case Byte:
			return 0o74, []uint16{uint16(m.Imm & 0xFF)}, nil
		case Word:
			return 0o74, []uint16{uint16(m.Imm)}, nil
		default:
			return 0o74, []uint16{uint16(m.Imm >> 16), uint16(m.Imm)}, nil
		}
	default:
		return 0, nil, fmt.Errorf("m68k: invalid addressing mode")
	}
}

func encodeBriefExt(b BriefExt) uint16 {
	var v uint16
	if b.IndexIsAddr {
		v |= 0x8000
	}
	v |= uint16(b.IndexReg) << 12
	if b.LongIndex {
		v |= 0x0800
	}
	v |= uint16(uint8(b.Disp))
	return v
}

func assembleMOVE(o Operands) ([]uint16, error) {
	if o.Size == Byte && o.Src.Mode.Tag == AMAddrReg {
		return nil, fmt.Errorf("m68k: MOVE.B cannot read an address register")
	}
	if !dataAlterable(o.Dst.Mode.Tag) {
		return nil, fmt.Errorf("m68k: MOVE destination is not alterable")
	}
	szBits, err := byteSizeBits(o.Size)
	if err != nil {
		return nil, err
	}
	srcField, srcExt, err := encodeEA(o.Src)
	if err != nil {
		return nil, err
	}
	dstField, dstExt, err := encodeEA(o.Dst)
	if err != nil {
		return nil, err
	}
	dstMode := dstField >> 3
	dstReg := dstField & 7
	opcode := szBits<<12 | dstReg<<9 | dstMode<<6 | srcField
	words := []uint16{opcode}
	words = append(words, srcExt...)
	words = append(words, dstExt...)
	return words, nil
}

// byteSizeBits is MOVE's own odd size encoding: 01=B,11=W,10=L.
func byteSizeBits(sz Size) (uint16, error) {
	switch sz {
	case Byte:
		return 1, nil
	case Word:
		return 3, nil
	case Long:
		return 2, nil
	default:
		return 0, fmt.Errorf("m68k: invalid size")
	}
}

func assembleMOVEA(o Operands) ([]uint16, error) {
	if o.Size == Byte {
		return nil, fmt.Errorf("m68k: MOVEA does not support byte size")
	}
	szBits, err := byteSizeBits(o.Size)
	if err != nil {
		return nil, err
	}
	srcField, ext, err := encodeEA(o.Src)
	if err != nil {
		return nil, err
	}
	opcode := szBits<<12 | uint16(o.Reg)<<9 | 1<<6 | srcField
	return append([]uint16{opcode}, ext...), nil
}

func assembleRegEA(kind Kind, o Operands) ([]uint16, error) {
	var base uint16
	switch kind {
	case KindADD:
		base = 0xD000
	case KindSUB:
		base = 0x9000
	case KindAND:
		base = 0xC000
	case KindOR:
		base = 0x8000
	}
	szBits, err := sizeBits2(o.Size)
	if err != nil {
		return nil, err
	}
	opmode := szBits
	ea := o.Src
	reg := o.Reg
	if o.Dir == DirToEA {
		if !dataAlterable(o.Dst.Mode.Tag) {
			return nil, fmt.Errorf("m68k: %s destination is not alterable", kind)
		}
		opmode += 4
		ea = o.Dst
	} else if o.Size == Byte && ea.Mode.Tag == AMAddrReg {
		return nil, fmt.Errorf("m68k: byte size cannot address An")
	}
	field, ext, err := encodeEA(ea)
	if err != nil {
		return nil, err
	}
	opcode := base | uint16(reg)<<9 | opmode<<6 | field
	return append([]uint16{opcode}, ext...), nil
}

func assembleCMP(o Operands) ([]uint16, error) {
	szBits, err := sizeBits2(o.Size)
	if err != nil {
		return nil, err
	}
	field, ext, err := encodeEA(o.Src)
	if err != nil {
		return nil, err
	}
	opcode := uint16(0xB000) | uint16(o.Reg)<<9 | szBits<<6 | field
	return append([]uint16{opcode}, ext...), nil
}

func assembleEOR(o Operands) ([]uint16, error) {
	if !dataAlterable(o.Dst.Mode.Tag) {
		return nil, fmt.Errorf("m68k: EOR destination is not alterable")
	}
	szBits, err := sizeBits2(o.Size)
	if err != nil {
		return nil, err
	}
	field, ext, err := encodeEA(o.Dst)
	if err != nil {
		return nil, err
	}
	opcode := uint16(0xB100) | uint16(o.Reg)<<9 | szBits<<6 | field
	return append([]uint16{opcode}, ext...), nil
}

func assembleQuick(kind Kind, o Operands) ([]uint16, error) {
	if o.Imm < 1 || o.Imm > 8 {
		return nil, fmt.Errorf("m68k: quick immediate %d out of range", o.Imm)
	}
	if o.Size == Byte && o.Dst.Mode.Tag == AMAddrReg {
		return nil, fmt.Errorf("m68k: byte size cannot target An")
	}
	var base uint16 = 0x5000
	if kind == KindSUBQ {
		base = 0x5100
	}
	szBits, err := sizeBits2(o.Size)
	if err != nil {
		return nil, err
	}
	data := uint16(o.Imm) & 7
	field, ext, err := encodeEA(o.Dst)
	if err != nil {
		return nil, err
	}
	opcode := base | data<<9 | szBits<<6 | field
	return append([]uint16{opcode}, ext...), nil
}

func assembleUnary(kind Kind, o Operands) ([]uint16, error) {
	if !dataAlterable(o.Dst.Mode.Tag) {
		return nil, fmt.Errorf("m68k: %s destination is not alterable", kind)
	}
	var base uint16
	switch kind {
	case KindNEG:
		base = 0x4400
	case KindNEGX:
		base = 0x4000
	case KindCLR:
		base = 0x4200
	case KindTST:
		base = 0x4A00
	case KindNOT:
		base = 0x4600
	}
	szBits, err := sizeBits2(o.Size)
	if err != nil {
		return nil, err
	}
	field, ext, err := encodeEA(o.Dst)
	if err != nil {
		return nil, err
	}
	return append([]uint16{base | szBits<<6 | field}, ext...), nil
}

// assembleBranch and assembleBcc pick the shortest form that holds Disp,
// except that an opcode decoded from a word-form branch (low byte 0) keeps
// the word form, so a decoded branch re-assembles to the same words.
func assembleBranch(kind Kind, o Operands, opcode uint16) ([]uint16, error) {
	base := uint16(0x6000)
	if kind == KindBSR {
		base = 0x6100
	}
	if o.Disp == 0 {
		return nil, fmt.Errorf("m68k: zero branch displacement needs an explicit word form")
	}
	wordForm := opcode == base
	if o.Disp >= -128 && o.Disp <= 127 && !wordForm {
		return []uint16{base | uint16(int8(o.Disp))&0xFF}, nil
	}
	if o.Disp >= -32768 && o.Disp <= 32767 {
		return []uint16{base, uint16(int16(o.Disp))}, nil
	}
	return []uint16{base | 0xFF, uint16(o.Disp >> 16), uint16(o.Disp)}, nil
}

func assembleBcc(o Operands, opcode uint16) ([]uint16, error) {
	if o.Cond == CondT || o.Cond == CondF {
		return nil, fmt.Errorf("m68k: condition %s is reserved for BRA/nothing, use BRA", o.Cond)
	}
	base := uint16(0x6000) | uint16(o.Cond)<<8
	wordForm := opcode == base
	if o.Disp >= -128 && o.Disp <= 127 && o.Disp != 0 && !wordForm {
		return []uint16{base | uint16(int8(o.Disp))&0xFF}, nil
	}
	if o.Disp >= -32768 && o.Disp <= 32767 {
		return []uint16{base, uint16(int16(o.Disp))}, nil
	}
	return []uint16{base | 0xFF, uint16(o.Disp >> 16), uint16(o.Disp)}, nil
}

func assembleAddrEA(kind Kind, o Operands) ([]uint16, error) {
	var base uint16
	switch kind {
	case KindADDA:
		base = 0xD000
	case KindSUBA:
		base = 0x9000
	case KindCMPA:
		base = 0xB000
	}
	szBit := uint16(3)
	if o.Size == Long {
		szBit = 7
	}
	field, ext, err := encodeEA(o.Src)
	if err != nil {
		return nil, err
	}
	opcode := base | uint16(o.Reg)<<9 | szBit<<6 | field
	return append([]uint16{opcode}, ext...), nil
}

func assembleImmEA(kind Kind, o Operands) ([]uint16, error) {
	var base uint16
	dstDataAlterable := true
	switch kind {
	case KindADDI:
		base = 0x0600
	case KindSUBI:
		base = 0x0400
	case KindANDI:
		base = 0x0200
	case KindORI:
		base = 0x0000
	case KindEORI:
		base = 0x0A00
	case KindCMPI:
		base = 0x0C00
		dstDataAlterable = false
	}
	if dstDataAlterable && !dataAlterable(o.Dst.Mode.Tag) {
		return nil, fmt.Errorf("m68k: %s destination is not alterable", kind)
	}
	szBits, err := sizeBits2(o.Size)
	if err != nil {
		return nil, err
	}
	field, dstExt, err := encodeEA(o.Dst)
	if err != nil {
		return nil, err
	}
	var immExt []uint16
	switch o.Size {
	case Byte:
		immExt = []uint16{uint16(o.Imm) & 0xFF}
	case Word:
		immExt = []uint16{uint16(o.Imm)}
	default:
		immExt = []uint16{uint16(o.Imm >> 16), uint16(o.Imm)}
	}
	opcode := base | szBits<<6 | field
	words := append([]uint16{opcode}, immExt...)
	return append(words, dstExt...), nil
}

func assembleImmStatus(kind Kind, o Operands, toCCR bool) ([]uint16, error) {
	var base uint16
	switch kind {
	case KindANDItoCCR, KindANDItoSR:
		base = 0x0200
	case KindORItoCCR, KindORItoSR:
		base = 0x0000
	case KindEORItoCCR, KindEORItoSR:
		base = 0x0A00
	}
	if toCCR {
		return []uint16{base | 0x3C, uint16(o.Imm) & 0xFF}, nil
	}
	return []uint16{base | 0x7C, uint16(o.Imm)}, nil
}

func assembleXOp(kind Kind, o Operands) ([]uint16, error) {
	base := uint16(0xD100)
	if kind == KindSUBX {
		base = 0x9100
	}
	szBits, err := sizeBits2(o.Size)
	if err != nil {
		return nil, err
	}
	opcode := base | uint16(o.Reg)<<9 | szBits<<6 | uint16(o.RegY)
	if !o.MemToReg {
		opcode |= 0x08
	}
	return []uint16{opcode}, nil
}

func assembleCMPM(o Operands) ([]uint16, error) {
	szBits, err := sizeBits2(o.Size)
	if err != nil {
		return nil, err
	}
	ax := o.Dst.Mode.Reg
	ay := o.Src.Mode.Reg
	return []uint16{0xB108 | uint16(ax)<<9 | szBits<<6 | uint16(ay)}, nil
}

func assembleMulDiv(kind Kind, o Operands) ([]uint16, error) {
	var base uint16
	switch kind {
	case KindMULU:
		base = 0xC0C0
	case KindMULS:
		base = 0xC1C0
	case KindDIVU:
		base = 0x80C0
	case KindDIVS:
		base = 0x81C0
	}
	field, ext, err := encodeEA(o.Src)
	if err != nil {
		return nil, err
	}
	return append([]uint16{base | uint16(o.Reg)<<9 | field}, ext...), nil
}

func assembleShift(kind Kind, o Operands) ([]uint16, error) {
	var typeBits uint16
	var left Kind
	switch kind {
	case KindASL, KindASR:
		typeBits, left = 0, KindASL
	case KindLSL, KindLSR:
		typeBits, left = 1, KindLSL
	case KindROXL, KindROXR:
		typeBits, left = 2, KindROXL
	case KindROL, KindROR:
		typeBits, left = 3, KindROL
	}
	dirBit := uint16(0)
	if kind == left {
		dirBit = 1
	}

	if o.ShiftTarget == shiftTargetMemory {
		if !dataAlterable(o.Dst.Mode.Tag) {
			return nil, fmt.Errorf("m68k: %s memory destination is not alterable", kind)
		}
		field, ext, err := encodeEA(o.Dst)
		if err != nil {
			return nil, err
		}
		opBits := typeBits
		opcode := uint16(0xE0C0) | opBits<<9 | field
		if dirBit == 1 {
			opcode |= 0x0100
		}
		return append([]uint16{opcode}, ext...), nil
	}

	if o.Dst.Mode.Tag != AMDataReg {
		return nil, fmt.Errorf("m68k: %s register-count form requires a Dn destination", kind)
	}
	szBits, err := sizeBits2(o.Size)
	if err != nil {
		return nil, err
	}
	opcode := uint16(0xE000) | szBits<<6 | dirBit<<8 | typeBits<<3 | uint16(o.Dst.Mode.Reg)
	if o.ShiftTarget == shiftTargetRegCount {
		opcode |= 0x20 | uint16(o.Reg)<<9
		return []uint16{opcode}, nil
	}
	count := uint16(o.ShiftCount) & 7
	opcode |= count << 9
	return []uint16{opcode}, nil
}

func assembleBitOp(kind Kind, o Operands) ([]uint16, error) {
	var opBits uint16
	switch kind {
	case KindBTST:
		opBits = 0
	case KindBCHG:
		opBits = 1
	case KindBCLR:
		opBits = 2
	case KindBSET:
		opBits = 3
	}
	alterable := kind != KindBTST
	if alterable && !dataAlterable(o.Dst.Mode.Tag) {
		return nil, fmt.Errorf("m68k: %s destination is not alterable", kind)
	}
	field, ext, err := encodeEA(o.Dst)
	if err != nil {
		return nil, err
	}
	if o.MemToReg {
		opcode := 0x0100 | uint16(o.Reg)<<9 | opBits<<6 | field
		return append([]uint16{opcode}, ext...), nil
	}
	opcode := 0x0800 | opBits<<6 | field
	words := append([]uint16{opcode}, uint16(o.Imm)&0xFF)
	return append(words, ext...), nil
}

func assembleXReg(kind Kind, o Operands) ([]uint16, error) {
	base := uint16(0xC100)
	if kind == KindSBCD {
		base = 0x8100
	}
	rx := o.Dst.Mode.Reg
	ry := o.Src.Mode.Reg
	opcode := base | uint16(rx)<<9 | uint16(ry)
	if !o.MemToReg {
		opcode |= 0x08
	}
	return []uint16{opcode}, nil
}
