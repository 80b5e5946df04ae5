package m68k

// AddressingModeTag enumerates the 12 addressing-mode variants of
// spec.md §3.2.
type AddressingModeTag uint8

const (
	AMDataReg   AddressingModeTag = iota // Drd(n)
	AMAddrReg                            // Ard(n)
	AMIndirect                           // Ari(n)
	AMPostInc                            // Ariwpo(n)
	AMPreDec                             // Ariwpr(n)
	AMDisp                               // Ariwd(n,d)
	AMIndex                              // Ariwi8(n,b)
	AMAbsShort                           // AbsShort(a)
	AMAbsLong                            // AbsLong(a)
	AMPCDisp                             // Pciwd(pc,d)
	AMPCIndex                            // Pciwi8(pc,b)
	AMImmediate                          // Immediate(v)
)

// BriefExt is the decoded brief extension word used by AMIndex/AMPCIndex
// (spec.md §3.2, §6.2).
type BriefExt struct {
	IndexIsAddr bool  // bit 15: index register is an address register
	IndexReg    uint8 // bits 12-14
	LongIndex   bool  // bit 11: full 32-bit index (else sign-extended word)
	Disp        int8  // bits 0-7
}

// decodeBriefExt parses a brief extension word per spec.md §6.2. Bits 8-10
// must be zero; this core does not validate that (matching the teacher,
// which also does not) since a malformed extension word does not
// correspond to any architecturally distinguishable behaviour here.
func decodeBriefExt(ext uint16) BriefExt {
	return BriefExt{
		IndexIsAddr: ext&0x8000 != 0,
		IndexReg:    uint8((ext >> 12) & 7),
		LongIndex:   ext&0x0800 != 0,
		Disp:        int8(ext & 0xFF),
	}
}

// indexValue returns the (optionally sign-extended) index register value
// named by a brief extension word.
func (c *CPU) indexValue(b BriefExt) int32 {
	var idx int32
	if b.IndexIsAddr {
		idx = int32(c.reg.A[b.IndexReg])
	} else {
		idx = int32(c.reg.D[b.IndexReg])
	}
	if !b.LongIndex {
		idx = int32(int16(idx))
	}
	return idx
}

// AddressingMode is the decoded representation of an operand's addressing
// mode, carrying whatever data the tag needs (spec.md §3.2's "closed sum
// type with 12 variants").
type AddressingMode struct {
	Tag   AddressingModeTag
	Reg   uint8    // register number: Drd/Ard/Ari/Ariwpo/Ariwpr/Ariwd/Ariwi8
	Disp  int16    // 16-bit signed displacement: Ariwd, Pciwd
	Brief BriefExt // Ariwi8, Pciwi8
	Abs   uint32   // AbsShort (sign-extended already), AbsLong
	PCAt  uint32   // PC value captured at the extension word: Pciwd, Pciwi8
	Imm   uint32   // Immediate
}

// Operand is the effective-address record of spec.md §3.2: a decoded
// addressing mode plus a resolved-address memo that is computed at most
// once (so Ariwpo/Ariwpr side effects fire exactly once per operand,
// per the invariant in §4.3).
type Operand struct {
	Mode     AddressingMode
	Size     Size
	resolved bool
	addr     uint32
}

// isRegisterDirect reports whether this operand reads/writes a register
// in place, with no bus access and no EA to resolve.
func (o *Operand) isRegisterDirect() bool {
	switch o.Mode.Tag {
	case AMDataReg, AMAddrReg, AMImmediate:
		return true
	default:
		return false
	}
}

// resolve computes the operand's effective address, applying
// post-increment/pre-decrement side effects exactly once (spec.md §4.3
// invariant), and memoises the result for subsequent reads/writes of the
// same operand.
func (o *Operand) resolve(c *CPU) uint32 {
	if o.resolved {
		return o.addr
	}
	o.resolved = true

	m := o.Mode
	switch m.Tag {
	case AMIndirect:
		o.addr = c.reg.A[m.Reg]
	case AMPostInc:
		addr := c.reg.A[m.Reg]
		inc := uint32(o.Size)
		if m.Reg == 7 && o.Size == Byte {
			inc = 2
		}
		c.reg.A[m.Reg] += inc
		o.addr = addr
	case AMPreDec:
		dec := uint32(o.Size)
		if m.Reg == 7 && o.Size == Byte {
			dec = 2
		}
		c.reg.A[m.Reg] -= dec
		o.addr = c.reg.A[m.Reg]
	case AMDisp:
		o.addr = uint32(int32(c.reg.A[m.Reg]) + int32(m.Disp))
	case AMIndex:
		idx := c.indexValue(m.Brief)
		o.addr = uint32(int32(c.reg.A[m.Reg]) + idx + int32(m.Brief.Disp))
	case AMAbsShort, AMAbsLong:
		o.addr = m.Abs
	case AMPCDisp:
		o.addr = uint32(int32(m.PCAt) + int32(m.Disp))
	case AMPCIndex:
		idx := c.indexValue(m.Brief)
		o.addr = uint32(int32(m.PCAt) + idx + int32(m.Brief.Disp))
	default:
		o.addr = 0
	}
	return o.addr
}

// address returns the memoised effective address (memory operands only).
func (o *Operand) address(c *CPU) uint32 {
	return o.resolve(c)
}

// read returns the operand's value, resolving a memory address at most
// once.
func (o *Operand) read(c *CPU, sz Size) uint32 {
	switch o.Mode.Tag {
	case AMDataReg:
		return c.reg.D[o.Mode.Reg] & sz.Mask()
	case AMAddrReg:
		return c.effectiveA(o.Mode.Reg) & sz.Mask()
	case AMImmediate:
		return o.Mode.Imm & sz.Mask()
	default:
		return c.readBus(sz, o.resolve(c))
	}
}

// write stores val into the operand. Data-register writes preserve the
// unmodified high-order bits for byte/word sizes (spec.md §3.1); address
// registers always take the full 32-bit value, with word writes
// sign-extended here.
func (o *Operand) write(c *CPU, sz Size, val uint32) {
	switch o.Mode.Tag {
	case AMDataReg:
		mask := sz.Mask()
		c.reg.D[o.Mode.Reg] = (c.reg.D[o.Mode.Reg] &^ mask) | (val & mask)
	case AMAddrReg:
		if sz == Word {
			val = signExtendWord(uint16(val))
		}
		c.setEffectiveA(o.Mode.Reg, val)
	default:
		c.writeBus(sz, o.resolve(c), val)
	}
}

// eaFetchCycles/eaWriteCycles delegate to the active Variant's addressing-
// mode cost table (spec.md §3.5).
func (c *CPU) eaFetchCycles(m AddressingMode, sz Size) uint64 {
	return c.variant.EAFetchCycles(m.Tag, m.Reg, sz)
}

func (c *CPU) eaWriteCycles(m AddressingMode, sz Size) uint64 {
	return c.variant.EAWriteCycles(m.Tag, m.Reg, sz)
}

// decodeEA parses the standard 6-bit mode/reg effective-address field
// into an AddressingMode, fetching any extension words it needs from the
// instruction stream (spec.md §4.2). mode7,reg selects among absolute-
// short, absolute-long, PC-relative-displacement, PC-relative-indexed, or
// immediate. A bus fault while fetching an extension word posts that
// error to the pending set, and stepInstruction then does not execute the
// instruction (spec.md §4.2
// "Encountering an access error during extension fetch fails the decode
// with that error vector").
func (c *CPU) decodeEA(mode, reg uint8, sz Size) AddressingMode {
	switch mode {
	case 0:
		return AddressingMode{Tag: AMDataReg, Reg: reg}
	case 1:
		return AddressingMode{Tag: AMAddrReg, Reg: reg}
	case 2:
		return AddressingMode{Tag: AMIndirect, Reg: reg}
	case 3:
		return AddressingMode{Tag: AMPostInc, Reg: reg}
	case 4:
		return AddressingMode{Tag: AMPreDec, Reg: reg}
	case 5:
		disp := int16(c.fetchPC())
		return AddressingMode{Tag: AMDisp, Reg: reg, Disp: disp}
	case 6:
		ext := c.fetchPC()
		return AddressingMode{Tag: AMIndex, Reg: reg, Brief: decodeBriefExt(ext)}
	case 7:
		switch reg {
		case 0:
			disp := int16(c.fetchPC())
			return AddressingMode{Tag: AMAbsShort, Abs: uint32(int32(disp))}
		case 1:
			return AddressingMode{Tag: AMAbsLong, Abs: c.fetchPCLong()}
		case 2:
			pc := c.reg.PC
			disp := int16(c.fetchPC())
			return AddressingMode{Tag: AMPCDisp, Disp: disp, PCAt: pc}
		case 3:
			pc := c.reg.PC
			ext := c.fetchPC()
			return AddressingMode{Tag: AMPCIndex, Brief: decodeBriefExt(ext), PCAt: pc}
		case 4:
			switch sz {
			case Byte:
				return AddressingMode{Tag: AMImmediate, Imm: uint32(c.fetchPC() & 0xFF)}
			case Word:
				return AddressingMode{Tag: AMImmediate, Imm: uint32(c.fetchPC())}
			default:
				return AddressingMode{Tag: AMImmediate, Imm: c.fetchPCLong()}
			}
		}
	}
	c.exception(vecIllegalInstruction)
	return AddressingMode{}
}

// decodeOperand decodes an EA field directly into an Operand ready for
// resolve/read/write.
func (c *CPU) decodeOperand(mode, reg uint8, sz Size) Operand {
	return Operand{Mode: c.decodeEA(mode, reg, sz), Size: sz}
}
