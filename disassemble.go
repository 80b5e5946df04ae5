package m68k

import (
	"fmt"
	"strings"
)

// Disassemble renders a decoded Instruction as text (spec.md §6.3), using
// decimal for ordinary literals and uppercase hex prefixed by '#'/'$' for
// immediates and absolute addresses.
func Disassemble(inst Instruction) string {
	o := inst.Operands
	mnemonic := inst.Kind.String()
	if sizedKind(inst.Kind) {
		mnemonic += "." + o.Size.String()
	}

	switch inst.Kind {
	case KindMOVE, KindADD, KindSUB, KindAND, KindOR, KindEOR, KindCMP:
		return fmt.Sprintf("%s %s, %s", mnemonic, operandText(o.Src), operandText(o.Dst))
	case KindMOVEA, KindADDA, KindSUBA, KindCMPA:
		return fmt.Sprintf("%s %s, A%d", mnemonic, operandText(o.Src), o.Reg)
	case KindMOVEQ:
		return fmt.Sprintf("MOVEQ #%d, D%d", o.Imm, o.Reg)
	case KindMOVEP:
		if o.MemToReg {
			return fmt.Sprintf("%s %d(A%d), D%d", mnemonic, o.Disp, o.RegY, o.Reg)
		}
		return fmt.Sprintf("%s D%d, %d(A%d)", mnemonic, o.Reg, o.Disp, o.RegY)
	case KindLEA:
		return fmt.Sprintf("LEA %s, A%d", operandText(o.Src), o.Reg)
	case KindPEA:
		return fmt.Sprintf("PEA %s", operandText(o.Src))
	case KindMOVEM:
		mask := o.RegList
		if !o.MemToReg && o.Dst.Mode.Tag == AMPreDec {
			mask = reverseMovemMask(mask)
		}
		list := movemListText(mask)
		if o.MemToReg {
			return fmt.Sprintf("%s %s, %s", mnemonic, operandText(o.Dst), list)
		}
		return fmt.Sprintf("%s %s, %s", mnemonic, list, operandText(o.Dst))
	case KindEXG:
		return fmt.Sprintf("EXG D%d/A%d, D%d/A%d", o.Reg, o.Reg, o.RegY, o.RegY)
	case KindSWAP:
		return fmt.Sprintf("SWAP D%d", o.Reg)
	case KindMOVEtoCCR:
		return fmt.Sprintf("MOVE %s, CCR", operandText(o.Src))
	case KindMOVEtoSR:
		return fmt.Sprintf("MOVE %s, SR", operandText(o.Src))
	case KindMOVEfromSR:
		return fmt.Sprintf("MOVE SR, %s", operandText(o.Dst))
	case KindMOVEUSP:
		if o.MemToReg {
			return fmt.Sprintf("MOVE A%d, USP", o.Reg)
		}
		return fmt.Sprintf("MOVE USP, A%d", o.Reg)

	case KindADDI, KindSUBI, KindANDI, KindORI, KindEORI, KindCMPI:
		return fmt.Sprintf("%s #%d, %s", mnemonic, o.Imm, operandText(o.Dst))
	case KindANDItoCCR, KindORItoCCR, KindEORItoCCR:
		return fmt.Sprintf("%s #$%X, CCR", mnemonic, o.Imm)
	case KindANDItoSR, KindORItoSR, KindEORItoSR:
		return fmt.Sprintf("%s #$%X, SR", mnemonic, o.Imm)
	case KindADDQ, KindSUBQ:
		return fmt.Sprintf("%s #%d, %s", mnemonic, o.Imm, operandText(o.Dst))
	case KindADDX, KindSUBX, KindCMPM:
		return fmt.Sprintf("%s %s, %s", mnemonic, operandText(o.Src), operandText(o.Dst))
	case KindMULU, KindMULS, KindDIVU, KindDIVS:
		return fmt.Sprintf("%s %s, D%d", inst.Kind.String(), operandText(o.Src), o.Reg)
	case KindCHK:
		return fmt.Sprintf("CHK %s, D%d", operandText(o.Src), o.Reg)
	case KindNEG, KindNEGX, KindCLR, KindTST, KindNOT:
		return fmt.Sprintf("%s %s", mnemonic, operandText(o.Dst))
	case KindEXT:
		return fmt.Sprintf("%s D%d", mnemonic, o.Reg)

	case KindLSL, KindLSR, KindASL, KindASR, KindROL, KindROR, KindROXL, KindROXR:
		if o.ShiftTarget == shiftTargetMemory {
			return fmt.Sprintf("%s %s", inst.Kind.String(), operandText(o.Dst))
		}
		if o.ShiftTarget == shiftTargetRegCount {
			return fmt.Sprintf("%s D%d, %s", mnemonic, o.Reg, operandText(o.Dst))
		}
		return fmt.Sprintf("%s #%d, %s", mnemonic, o.ShiftCount, operandText(o.Dst))

	case KindBTST, KindBCHG, KindBCLR, KindBSET:
		if o.MemToReg {
			return fmt.Sprintf("%s D%d, %s", inst.Kind.String(), o.Reg, operandText(o.Dst))
		}
		return fmt.Sprintf("%s #%d, %s", inst.Kind.String(), o.Imm, operandText(o.Dst))

	case KindABCD, KindSBCD:
		return fmt.Sprintf("%s %s, %s", inst.Kind.String(), operandText(o.Src), operandText(o.Dst))
	case KindNBCD:
		return fmt.Sprintf("NBCD %s", operandText(o.Dst))

	case KindBcc:
		return fmt.Sprintf("B%s $%X", o.Cond, uint32(int32(inst.PC)+2+o.Disp))
	case KindBRA:
		return fmt.Sprintf("BRA $%X", uint32(int32(inst.PC)+2+o.Disp))
	case KindBSR:
		return fmt.Sprintf("BSR $%X", uint32(int32(inst.PC)+2+o.Disp))
	case KindDBcc:
		return fmt.Sprintf("DB%s D%d, $%X", o.Cond, o.Reg, uint32(int32(inst.PC)+2+o.Disp))
	case KindJMP:
		return fmt.Sprintf("JMP %s", operandText(o.Dst))
	case KindJSR:
		return fmt.Sprintf("JSR %s", operandText(o.Dst))
	case KindRTS:
		return "RTS"
	case KindRTE:
		return "RTE"
	case KindRTR:
		return "RTR"
	case KindScc:
		return fmt.Sprintf("S%s %s", o.Cond, operandText(o.Dst))

	case KindTRAP:
		return fmt.Sprintf("TRAP #%d", o.Imm)
	case KindTRAPV:
		return "TRAPV"
	case KindSTOP:
		return fmt.Sprintf("STOP #$%X", o.Imm)
	case KindRESET:
		return "RESET"
	case KindNOP:
		return "NOP"
	case KindTAS:
		return fmt.Sprintf("TAS %s", operandText(o.Dst))
	case KindLINK:
		return fmt.Sprintf("LINK A%d, #%d", o.Reg, o.Disp)
	case KindUNLK:
		return fmt.Sprintf("UNLK A%d", o.Reg)
	case KindIllegal:
		return "ILLEGAL"
	default:
		return "?"
	}
}

// sizedKind reports whether this Kind's mnemonic carries a .B/.W/.L
// suffix in disassembly. Branch, system, and register-implicit forms do
// not (spec.md §6.3).
func sizedKind(k Kind) bool {
	switch k {
	case KindMOVE, KindADD, KindSUB, KindAND, KindOR, KindEOR, KindCMP,
		KindADDI, KindSUBI, KindANDI, KindORI, KindEORI, KindCMPI,
		KindADDQ, KindSUBQ, KindADDX, KindSUBX, KindCMPM,
		KindNEG, KindNEGX, KindCLR, KindTST, KindEXT, KindNOT,
		KindLSL, KindLSR, KindASL, KindASR, KindROL, KindROR, KindROXL, KindROXR,
		KindMOVEM, KindMOVEP:
		return true
	default:
		return false
	}
}

func operandText(o Operand) string {
	m := o.Mode
	switch m.Tag {
	case AMDataReg:
		return fmt.Sprintf("D%d", m.Reg)
	case AMAddrReg:
		return fmt.Sprintf("A%d", m.Reg)
	case AMIndirect:
		return fmt.Sprintf("(A%d)", m.Reg)
	case AMPostInc:
		return fmt.Sprintf("(A%d)+", m.Reg)
	case AMPreDec:
		return fmt.Sprintf("-(A%d)", m.Reg)
	case AMDisp:
		return fmt.Sprintf("%d(A%d)", m.Disp, m.Reg)
	case AMIndex:
		return fmt.Sprintf("%d(A%d,%s)", m.Brief.Disp, m.Reg, briefRegText(m.Brief))
	case AMAbsShort:
		return fmt.Sprintf("$%X.W", m.Abs)
	case AMAbsLong:
		return fmt.Sprintf("$%X.L", m.Abs)
	case AMPCDisp:
		return fmt.Sprintf("%d(PC)", m.Disp)
	case AMPCIndex:
		return fmt.Sprintf("%d(PC,%s)", m.Brief.Disp, briefRegText(m.Brief))
	case AMImmediate:
		return fmt.Sprintf("#$%X", m.Imm)
	default:
		return "?"
	}
}

func briefRegText(b BriefExt) string {
	kind := "D"
	if b.IndexIsAddr {
		kind = "A"
	}
	size := "W"
	if b.LongIndex {
		size = "L"
	}
	return fmt.Sprintf("%s%d.%s", kind, b.IndexReg, size)
}

// reverseMovemMask flips a MOVEM register mask bit-for-bit (bit i moves to
// bit 15-i), turning a pre-decrement destination's wire-order mask (bit
// 0=A7 .. bit 15=D0) into the D0..D7,A0..A7 order movemListText expects.
func reverseMovemMask(mask uint16) uint16 {
	var out uint16
	for i := 0; i < 16; i++ {
		if mask&(1<<uint(i)) != 0 {
			out |= 1 << uint(15-i)
		}
	}
	return out
}

func movemListText(mask uint16) string {
	var groups []string
	name := func(i int) string {
		if i < 8 {
			return fmt.Sprintf("D%d", i)
		}
		return fmt.Sprintf("A%d", i-8)
	}
	i := 0
	for i < 16 {
		if mask&(1<<uint(i)) == 0 {
			i++
			continue
		}
		start := i
		for i+1 < 16 && mask&(1<<uint(i+1)) != 0 && ((i+1)%8 != 0) {
			i++
		}
		if i == start {
			groups = append(groups, name(start))
		} else {
			groups = append(groups, name(start)+"-"+name(i))
		}
		i++
	}
	return strings.Join(groups, "/")
}
