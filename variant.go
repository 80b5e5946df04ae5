package m68k

// StackFrameFormat selects the exception stack-frame layout a Variant uses.
type StackFrameFormat uint8

const (
	// FrameMC68000 pushes PC then SR (the short form), with an additional
	// opcode/address/function-code group for address and access errors.
	FrameMC68000 StackFrameFormat = iota
	// FrameSCC68070 prepends a 16-bit format word (vector*4) before PC/SR
	// for ordinary vectors, or a 13-word (26-byte) trailer plus the
	// 0xF000|vector*4 long-format word for bus/address errors.
	FrameSCC68070
)

// Variant supplies the cycle-cost model and stack-frame format for a
// specific 68000-family implementation (MC68000 or SCC68070). The core is
// parametric over this value: construct a *CPU with the desired Variant
// and every cycle charge and exception frame shape follows it.
type Variant struct {
	Name        string
	Frame       StackFrameFormat
	ResetCycles uint64
	// VectorCycles returns the processing cost charged when servicing the
	// exception with the given vector (spec.md §3.5).
	VectorCycles func(vector uint8) uint64
	// EAFetchCycles/EAWriteCycles return the addressing-mode base cost for
	// reading/writing an operand of the given size; callers add these to
	// the per-instruction base cost from InstrCycles.
	EAFetchCycles func(mode AddressingModeTag, reg uint8, sz Size) uint64
	EAWriteCycles func(mode AddressingModeTag, reg uint8, sz Size) uint64
	// InstrCycles looks up the fixed per-instruction-kind base cost for a
	// given size. No handler adds a part that depends on operand shape:
	// shift count, MOVEM register count and DIVU/DIVS operands do not
	// change the charge.
	InstrCycles func(kind Kind, sz Size) uint64
}

func eaBaseCycles(mode AddressingModeTag, reg uint8, sz Size, write bool) uint64 {
	var base uint64
	switch mode {
	case AMDataReg, AMAddrReg:
		base = 0
	case AMIndirect, AMPostInc:
		base = 4
	case AMPreDec:
		if write {
			base = 4
		} else {
			base = 6
		}
	case AMDisp:
		base = 8
	case AMIndex:
		base = 10
	case AMAbsShort:
		base = 8
	case AMAbsLong:
		base = 12
	case AMPCDisp:
		base = 8
	case AMPCIndex:
		base = 10
	case AMImmediate:
		base = 4
	}
	if sz == Long && base > 0 {
		base += 4
	}
	return base
}

// MC68000 is the baseline variant: PRM Table 8-x cycle counts, short
// exception stack frames.
var MC68000 = Variant{
	Name:        "MC68000",
	Frame:       FrameMC68000,
	ResetCycles: 40,
	VectorCycles: func(vector uint8) uint64 {
		if vector >= 24 && vector <= 31 {
			return 44 // interrupt autovector
		}
		return 34
	},
	EAFetchCycles: func(mode AddressingModeTag, reg uint8, sz Size) uint64 {
		return eaBaseCycles(mode, reg, sz, false)
	},
	EAWriteCycles: func(mode AddressingModeTag, reg uint8, sz Size) uint64 {
		return eaBaseCycles(mode, reg, sz, true)
	},
	InstrCycles: defaultInstrCycles,
}

// SCC68070 reuses the MC68000 cycle model (the SCC68070 datasheet timing
// is outside this spec's budget) but selects the long-format exception
// stack frame and RTE variant handling (spec.md §4.4 "RTE variant
// handling", §4.5 "Per-exception stack frame").
var SCC68070 = Variant{
	Name:         "SCC68070",
	Frame:        FrameSCC68070,
	ResetCycles:  40,
	VectorCycles: MC68000.VectorCycles,
	EAFetchCycles: func(mode AddressingModeTag, reg uint8, sz Size) uint64 {
		return eaBaseCycles(mode, reg, sz, false)
	},
	EAWriteCycles: func(mode AddressingModeTag, reg uint8, sz Size) uint64 {
		return eaBaseCycles(mode, reg, sz, true)
	},
	InstrCycles: defaultInstrCycles,
}

// defaultInstrCycles is the per-instruction base-cost table, one entry
// per instruction kind plus a long-size adjustment. Only the
// register/register-direct base is modeled here; handlers add the
// resolved EA cost on top via Variant.EAFetchCycles/EAWriteCycles.
func defaultInstrCycles(kind Kind, sz Size) uint64 {
	if base, ok := instrBaseCycles[kind]; ok {
		if sz == Long {
			return base + instrLongExtra[kind]
		}
		return base
	}
	return 4
}

var instrBaseCycles = map[Kind]uint64{
	KindMOVE: 4, KindMOVEA: 4, KindMOVEQ: 4,
	KindADD: 4, KindADDA: 8, KindADDI: 8, KindADDQ: 4, KindADDX: 4,
	KindSUB: 4, KindSUBA: 8, KindSUBI: 8, KindSUBQ: 4, KindSUBX: 4,
	KindCMP: 4, KindCMPA: 6, KindCMPI: 8, KindCMPM: 12,
	KindAND: 4, KindANDI: 8, KindOR: 4, KindORI: 8, KindEOR: 4, KindEORI: 8,
	KindNOT: 4, KindNEG: 4, KindNEGX: 4, KindCLR: 4, KindTST: 4,
	KindMULU: 70, KindMULS: 70, KindDIVU: 140, KindDIVS: 158,
	KindLSL: 6, KindLSR: 6, KindASL: 6, KindASR: 6,
	KindROL: 6, KindROR: 6, KindROXL: 6, KindROXR: 6,
	KindBTST: 4, KindBCHG: 8, KindBCLR: 8, KindBSET: 8,
	KindABCD: 6, KindSBCD: 6, KindNBCD: 6,
	KindBRA: 10, KindBSR: 18, KindBcc: 8, KindDBcc: 10,
	KindJMP: 8, KindJSR: 16, KindRTS: 16, KindRTE: 20, KindRTR: 20,
	KindLEA: 4, KindPEA: 12, KindLINK: 16, KindUNLK: 12,
	KindSWAP: 4, KindEXT: 4, KindEXG: 6, KindTAS: 10,
	KindMOVEM: 8, KindMOVEP: 16,
	KindTRAP: 34, KindTRAPV: 4, KindCHK: 10,
	KindSTOP: 4, KindRESET: 132, KindNOP: 4,
	KindMOVEtoSR: 12, KindMOVEfromSR: 6, KindMOVEtoCCR: 12,
	KindANDItoCCR: 20, KindANDItoSR: 20, KindORItoCCR: 20, KindORItoSR: 20,
	KindEORItoCCR: 20, KindEORItoSR: 20, KindMOVEUSP: 4, KindScc: 4,
	KindUnknown: 4, KindIllegal: 4,
}

var instrLongExtra = map[Kind]uint64{
	KindADD: 2, KindSUB: 2, KindAND: 2, KindOR: 2, KindEOR: 2,
	KindADDI: 8, KindSUBI: 8, KindCMPI: 6, KindCMP: 2,
	KindNOT: 2, KindNEG: 2, KindNEGX: 2, KindCLR: 2, KindTST: 2,
	KindLSL: 2, KindLSR: 2, KindASL: 2, KindASR: 2,
	KindROL: 2, KindROR: 2, KindROXL: 2, KindROXR: 2,
}
