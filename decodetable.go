package m68k

// kindTable is the 65536-entry static decoder table of spec.md §4.1: one
// instruction Kind per possible opcode word. Population is pure and
// deterministic; no two families may claim the same entry (a collision
// would be a generator bug, and set panics on one at init).
var kindTable [65536]Kind

func init() {
	for i := range kindTable {
		kindTable[i] = KindUnknown
	}
	registerMoveKinds()
	registerArithKinds()
	registerLogicKinds()
	registerShiftKinds()
	registerBitKinds()
	registerBCDKinds()
	registerBranchKinds()
	registerSystemKinds()
}

func set(opcode uint16, k Kind) {
	if kindTable[opcode] != KindUnknown {
		panic("m68k: decoder table collision at opcode " + itohex(opcode))
	}
	kindTable[opcode] = k
}

func itohex(v uint16) string {
	const digits = "0123456789ABCDEF"
	buf := [4]byte{}
	for i := 3; i >= 0; i-- {
		buf[i] = digits[v&0xF]
		v >>= 4
	}
	return string(buf[:])
}

// dataAlterableEA reports whether (mode,reg) is a legal data-alterable
// effective address (all modes except An-direct and PC-relative/
// immediate), used to bound the enumeration loops below.
func dataAlterableEA(mode, reg uint16) bool {
	if mode == 1 {
		return false
	}
	if mode == 7 && reg > 1 {
		return false
	}
	return true
}

// anyEA reports whether (mode,reg) is any legal addressing mode,
// including PC-relative and immediate (used for source operands).
func anyEA(mode, reg uint16) bool {
	if mode == 7 && reg > 4 {
		return false
	}
	return true
}

func registerMoveKinds() {
	// MOVE.B/W/L: 00SS DDDd ddss ssss
	for _, szBits := range []uint16{0x1000, 0x2000, 0x3000} {
		for dstMode := uint16(0); dstMode < 8; dstMode++ {
			if dstMode == 1 {
				continue
			}
			for dstReg := uint16(0); dstReg < 8; dstReg++ {
				if dstMode == 7 && dstReg > 1 {
					continue
				}
				for srcMode := uint16(0); srcMode < 8; srcMode++ {
					for srcReg := uint16(0); srcReg < 8; srcReg++ {
						if !anyEA(srcMode, srcReg) {
							continue
						}
						set(szBits|dstReg<<9|dstMode<<6|srcMode<<3|srcReg, KindMOVE)
					}
				}
			}
		}
	}
	// MOVEA.W/L: 00SS DDD0 01ss ssss
	for _, szBits := range []uint16{0x2000, 0x3000} {
		for dstReg := uint16(0); dstReg < 8; dstReg++ {
			for srcMode := uint16(0); srcMode < 8; srcMode++ {
				for srcReg := uint16(0); srcReg < 8; srcReg++ {
					if !anyEA(srcMode, srcReg) {
						continue
					}
					set(szBits|dstReg<<9|1<<6|srcMode<<3|srcReg, KindMOVEA)
				}
			}
		}
	}
	// MOVEQ: 0111 DDD0 dddd dddd
	for dn := uint16(0); dn < 8; dn++ {
		for data := uint16(0); data < 256; data++ {
			set(0x7000|dn<<9|data, KindMOVEQ)
		}
	}
	// MOVEP: 0000 DDD1 SS00 1AAA (SS: 100=W->reg 101=L->reg 110=W->mem 111=L->mem)
	for dn := uint16(0); dn < 8; dn++ {
		for _, ss := range []uint16{4, 5, 6, 7} {
			for an := uint16(0); an < 8; an++ {
				set(0x0008|dn<<9|ss<<6|an, KindMOVEP)
			}
		}
	}
	// LEA: 0100 AAA1 11mm mrrr
	for an := uint16(0); an < 8; an++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 0 || mode == 1 || mode == 3 || mode == 4 {
					continue
				}
				if mode == 7 && reg > 3 {
					continue
				}
				set(0x41C0|an<<9|mode<<3|reg, KindLEA)
			}
		}
	}
	// PEA: 0100 1000 01mm mrrr
	for mode := uint16(2); mode < 8; mode++ {
		if mode == 3 || mode == 4 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 3 {
				continue
			}
			set(0x4840|mode<<3|reg, KindPEA)
		}
	}
	// MOVEM: 0100 1D00 1Sii iiii (D: 0=reg->mem 1=mem->reg, S: 0=W 1=L)
	for _, d := range []uint16{0, 1} {
		for _, s := range []uint16{0, 1} {
			for mode := uint16(0); mode < 8; mode++ {
				if d == 0 { // reg->mem: control alterable or predecrement, not postinc
					if mode == 0 || mode == 1 || mode == 3 {
						continue
					}
				} else { // mem->reg: control or postinc, not predecrement
					if mode == 0 || mode == 1 || mode == 4 {
						continue
					}
				}
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 3 {
						continue
					}
					if mode == 7 && d == 0 && reg > 1 {
						continue
					}
					set(0x4880|d<<10|s<<6|mode<<3|reg, KindMOVEM)
				}
			}
		}
	}
	// EXG: 1100 XXX1 ooYY YYY (o: 01000=Dx,Dy 01001=Ax,Ay 10001=Dx,Ay)
	for rx := uint16(0); rx < 8; rx++ {
		for ry := uint16(0); ry < 8; ry++ {
			set(0xC140|rx<<9|ry, KindEXG)
			set(0xC148|rx<<9|ry, KindEXG)
			set(0xC188|rx<<9|ry, KindEXG)
		}
	}
	// SWAP: 0100 1000 0100 0rrr
	for reg := uint16(0); reg < 8; reg++ {
		set(0x4840|reg, KindSWAP)
	}
	// MOVE to CCR: 0100 0100 11mm mrrr
	for mode := uint16(0); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			if !anyEA(mode, reg) {
				continue
			}
			set(0x44C0|mode<<3|reg, KindMOVEtoCCR)
		}
	}
	// MOVE to SR: 0100 0110 11mm mrrr
	for mode := uint16(0); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			if !anyEA(mode, reg) {
				continue
			}
			set(0x46C0|mode<<3|reg, KindMOVEtoSR)
		}
	}
	// MOVE from SR: 0100 0000 11mm mrrr
	for mode := uint16(0); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			if !dataAlterableEA(mode, reg) {
				continue
			}
			set(0x40C0|mode<<3|reg, KindMOVEfromSR)
		}
	}
	// MOVE USP: 0100 1110 0110 dRRR (d: 0=USP->An, 1=An->USP)
	for an := uint16(0); an < 8; an++ {
		set(0x4E60|an, KindMOVEUSP)
		set(0x4E68|an, KindMOVEUSP)
	}
}

func registerArithKinds() {
	fam := func(base uint16, k Kind, dataOnlyDst bool) {
		for dn := uint16(0); dn < 8; dn++ {
			for szBits := uint16(0); szBits < 3; szBits++ {
				for mode := uint16(0); mode < 8; mode++ {
					for reg := uint16(0); reg < 8; reg++ {
						if !anyEA(mode, reg) {
							continue
						}
						if mode == 1 && szBits == 0 {
							continue
						}
						set(base|dn<<9|szBits<<6|mode<<3|reg, k)
					}
				}
				if dataOnlyDst {
					for mode := uint16(2); mode < 8; mode++ {
						for reg := uint16(0); reg < 8; reg++ {
							if !dataAlterableEA(mode, reg) {
								continue
							}
							set(base|dn<<9|(szBits+4)<<6|mode<<3|reg, k)
						}
					}
				}
			}
		}
	}
	fam(0xD000, KindADD, true)
	fam(0x9000, KindSUB, true)
	fam(0xC000, KindAND, true)
	fam(0x8000, KindOR, true)
	// EOR is always Dn,<ea> with a data-alterable destination (1011 DDD1
	// SSmm mrrr) -- no <ea>,Dn form, so it does not use fam above.
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !dataAlterableEA(mode, reg) {
						continue
					}
					set(0xB100|dn<<9|szBits<<6|mode<<3|reg, KindEOR)
				}
			}
		}
	}
	// CMP: 1011 DDD0 SSmm mrrr
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !anyEA(mode, reg) {
						continue
					}
					set(0xB000|dn<<9|szBits<<6|mode<<3|reg, KindCMP)
				}
			}
		}
	}
	// ADDA/SUBA/CMPA: xxx1 AAA o11 mmm rrr  (o selects W/L via bits 8-6 = 011/111)
	addrFam := func(base uint16, k Kind) {
		for an := uint16(0); an < 8; an++ {
			for _, szBit := range []uint16{3, 7} {
				for mode := uint16(0); mode < 8; mode++ {
					for reg := uint16(0); reg < 8; reg++ {
						if !anyEA(mode, reg) {
							continue
						}
						set(base|an<<9|szBit<<6|mode<<3|reg, k)
					}
				}
			}
		}
	}
	addrFam(0xD000, KindADDA)
	addrFam(0x9000, KindSUBA)
	addrFam(0xB000, KindCMPA)
	// ADDI/SUBI/ANDI/ORI/EORI/CMPI: 0000 oooo ooSS mmmm rrr + immediate
	immFam := func(base uint16, k Kind, dstDataAlterable bool) {
		for szBits := uint16(0); szBits < 3; szBits++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					ok := anyEA(mode, reg)
					if dstDataAlterable {
						ok = dataAlterableEA(mode, reg)
					}
					if !ok {
						continue
					}
					set(base|szBits<<6|mode<<3|reg, k)
				}
			}
		}
	}
	immFam(0x0600, KindADDI, true)
	immFam(0x0400, KindSUBI, true)
	immFam(0x0200, KindANDI, true)
	immFam(0x0000, KindORI, true)
	immFam(0x0A00, KindEORI, true)
	immFam(0x0C00, KindCMPI, false)
	// ANDI/ORI/EORI #imm,CCR and #imm,SR
	set(0x023C, KindANDItoCCR)
	set(0x027C, KindANDItoSR)
	set(0x003C, KindORItoCCR)
	set(0x007C, KindORItoSR)
	set(0x0A3C, KindEORItoCCR)
	set(0x0A7C, KindEORItoSR)
	// ADDQ/SUBQ: 0101 ddd0 SSmm mrrr
	quickFam := func(base uint16, k Kind) {
		for data := uint16(0); data < 8; data++ {
			for szBits := uint16(0); szBits < 3; szBits++ {
				for mode := uint16(0); mode < 8; mode++ {
					for reg := uint16(0); reg < 8; reg++ {
						if !anyEA(mode, reg) {
							continue
						}
						if mode == 1 && szBits == 0 {
							continue
						}
						set(base|data<<9|szBits<<6|mode<<3|reg, k)
					}
				}
			}
		}
	}
	quickFam(0x5000, KindADDQ)
	quickFam(0x5100, KindSUBQ)
	// ADDX/SUBX/CMPM: 1X01 XXX1 SS0R YYY (R: 0=Dy,Dx 1=-(Ay),-(Ax))
	for rx := uint16(0); rx < 8; rx++ {
		for ry := uint16(0); ry < 8; ry++ {
			for _, szBits := range []uint16{0, 1, 2} {
				set(0xD100|rx<<9|szBits<<6|ry, KindADDX)
				set(0xD108|rx<<9|szBits<<6|ry, KindADDX)
				set(0x9100|rx<<9|szBits<<6|ry, KindSUBX)
				set(0x9108|rx<<9|szBits<<6|ry, KindSUBX)
				set(0xB108|rx<<9|szBits<<6|ry, KindCMPM)
			}
		}
	}
	// MULU/MULS/DIVU/DIVS: 11oo DDD o 11mm mrrr (data-addressable src)
	mulDiv := func(base uint16, k Kind) {
		for dn := uint16(0); dn < 8; dn++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !anyEA(mode, reg) || mode == 1 {
						continue
					}
					set(base|dn<<9|mode<<3|reg, k)
				}
			}
		}
	}
	mulDiv(0xC0C0, KindMULU)
	mulDiv(0xC1C0, KindMULS)
	mulDiv(0x80C0, KindDIVU)
	mulDiv(0x81C0, KindDIVS)
	// NEG/NEGX/CLR/TST: 0100 oooo SSmm mrrr
	unaryFam := func(base uint16, k Kind, allowAddr bool) {
		for szBits := uint16(0); szBits < 3; szBits++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					ok := dataAlterableEA(mode, reg)
					if allowAddr {
						ok = anyEA(mode, reg)
					}
					if !ok {
						continue
					}
					set(base|szBits<<6|mode<<3|reg, k)
				}
			}
		}
	}
	unaryFam(0x4400, KindNEG, false)
	unaryFam(0x4000, KindNEGX, false)
	unaryFam(0x4200, KindCLR, false)
	unaryFam(0x4A00, KindTST, false)
	// EXT.W/L: 0100 1000 1S00 0rrr
	for reg := uint16(0); reg < 8; reg++ {
		set(0x4880|reg, KindEXT)
		set(0x48C0|reg, KindEXT)
	}
	// CHK: 0100 DDD1 10mm mrrr
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !anyEA(mode, reg) {
					continue
				}
				set(0x4180|dn<<9|mode<<3|reg, KindCHK)
			}
		}
	}
}

func registerLogicKinds() {
	// NOT: 0100 0110 SSmm mrrr
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !dataAlterableEA(mode, reg) {
					continue
				}
				set(0x4600|szBits<<6|mode<<3|reg, KindNOT)
			}
		}
	}
}

func registerShiftKinds() {
	// Register form: 1110 ccc d SS itt rrr (c=count/Dn, d=dir, i: 0=imm 1=reg, type in bits 4-3)
	regShift := func(typeBits uint16, left, right Kind) {
		for cnt := uint16(0); cnt < 8; cnt++ {
			for szBits := uint16(0); szBits < 3; szBits++ {
				for _, useReg := range []uint16{0, 1} {
					for rn := uint16(0); rn < 8; rn++ {
						op := 0xE000 | cnt<<9 | szBits<<6 | useReg<<5 | typeBits<<3 | rn
						set(op|0x0100, left)
						set(op, right)
					}
				}
			}
		}
	}
	regShift(0, KindASL, KindASR)
	regShift(1, KindLSL, KindLSR)
	regShift(2, KindROXL, KindROXR)
	regShift(3, KindROL, KindROR)
	// Memory form (word only): 1110 ooo d 11mm mrrr
	memShift := func(opBits uint16, left, right Kind) {
		for mode := uint16(2); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !dataAlterableEA(mode, reg) {
					continue
				}
				set(0xE0C0|opBits<<9|mode<<3|reg, right)
				set(0xE1C0|opBits<<9|mode<<3|reg, left)
			}
		}
	}
	memShift(0, KindASL, KindASR)
	memShift(1, KindLSL, KindLSR)
	memShift(2, KindROXL, KindROXR)
	memShift(3, KindROL, KindROR)
}

func registerBitKinds() {
	// Dynamic: 0000 DDD1 ooee eeee
	for dn := uint16(0); dn < 8; dn++ {
		for opBits, k := range map[uint16]Kind{0: KindBTST, 1: KindBCHG, 2: KindBCLR, 3: KindBSET} {
			for mode := uint16(0); mode < 8; mode++ {
				if mode == 1 {
					continue
				}
				for reg := uint16(0); reg < 8; reg++ {
					ok := dataAlterableEA(mode, reg)
					if k == KindBTST {
						ok = anyEA(mode, reg) && mode != 1
					}
					if !ok {
						continue
					}
					set(0x0100|dn<<9|opBits<<6|mode<<3|reg, k)
				}
			}
		}
	}
	// Static: 0000 1000 ooee eeee + immediate
	for opBits, k := range map[uint16]Kind{0: KindBTST, 1: KindBCHG, 2: KindBCLR, 3: KindBSET} {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				ok := dataAlterableEA(mode, reg)
				if k == KindBTST {
					ok = anyEA(mode, reg) && mode != 1
				}
				if !ok {
					continue
				}
				set(0x0800|opBits<<6|mode<<3|reg, k)
			}
		}
	}
}

func registerBCDKinds() {
	for rx := uint16(0); rx < 8; rx++ {
		for ry := uint16(0); ry < 8; ry++ {
			set(0xC100|rx<<9|ry, KindABCD)
			set(0xC108|rx<<9|ry, KindABCD)
			set(0x8100|rx<<9|ry, KindSBCD)
			set(0x8108|rx<<9|ry, KindSBCD)
		}
	}
	for mode := uint16(0); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			if !dataAlterableEA(mode, reg) {
				continue
			}
			set(0x4800|mode<<3|reg, KindNBCD)
		}
	}
}

func registerBranchKinds() {
	for cc := uint16(2); cc < 16; cc++ {
		for disp := uint16(0); disp < 256; disp++ {
			set(0x6000|cc<<8|disp, KindBcc)
		}
	}
	for disp := uint16(0); disp < 256; disp++ {
		set(0x6000|disp, KindBRA)
		set(0x6100|disp, KindBSR)
	}
	for cc := uint16(0); cc < 16; cc++ {
		for reg := uint16(0); reg < 8; reg++ {
			set(0x50C8|cc<<8|reg, KindDBcc)
		}
	}
	for mode := uint16(2); mode < 8; mode++ {
		if mode == 3 || mode == 4 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 3 {
				continue
			}
			set(0x4EC0|mode<<3|reg, KindJMP)
			set(0x4E80|mode<<3|reg, KindJSR)
		}
	}
	set(0x4E75, KindRTS)
	set(0x4E73, KindRTE)
	set(0x4E77, KindRTR)
	// Scc: 0101 cccc 11mm mrrr
	for cc := uint16(0); cc < 16; cc++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !dataAlterableEA(mode, reg) {
					continue
				}
				set(0x50C0|cc<<8|mode<<3|reg, KindScc)
			}
		}
	}
}

func registerSystemKinds() {
	set(0x4E71, KindNOP)
	set(0x4E72, KindSTOP)
	set(0x4E70, KindRESET)
	set(0x4E76, KindTRAPV)
	for v := uint16(0); v < 16; v++ {
		set(0x4E40|v, KindTRAP)
	}
	for an := uint16(0); an < 8; an++ {
		set(0x4E50|an, KindLINK)
		set(0x4E58|an, KindUNLK)
	}
	for mode := uint16(0); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			if !dataAlterableEA(mode, reg) {
				continue
			}
			set(0x4AC0|mode<<3|reg, KindTAS)
		}
	}
}
