package m68k

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// dumpOnFail is a require.TestingT wrapper used to attach a register dump
// to a failed assertion without cluttering every call site with t.Log.
func dumpOnFail(t *testing.T, cpu *CPU) func() {
	return func() {
		if t.Failed() {
			t.Log(spew.Sdump(cpu.Registers()))
		}
	}
}

// TestADDIOverflow exercises ADDI.W #$7FFF,D0 against D0=1: the word
// result 0x8000 sets V (signed overflow) and N, and leaves Z clear.
func TestADDIOverflow(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x0640, 0x7FFF) // ADDI.W #$7FFF,D0
	cpu.reg.D[0] = 1

	r := cpu.Step()
	require.Equal(t, KindADDI, r.Instruction.Kind)
	require.Equal(t, uint32(0x8000), cpu.reg.D[0])
	require.True(t, cpu.flagSet(flagV), "overflow flag should be set")
	require.True(t, cpu.flagSet(flagN), "negative flag should be set")
	require.False(t, cpu.flagSet(flagZ), "zero flag should be clear")
}

// TestMOVEBPostIncrementA7 checks that a byte-sized post-increment through
// A7 advances by 2 (word alignment), not 1, per spec.md's stack-alignment
// special case.
func TestMOVEBPostIncrementA7(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x101F) // MOVE.B (A7)+,D0
	startSP := cpu.reg.A[7]
	bus.SetByte(startSP, 0x42)

	r := cpu.Step()
	require.Equal(t, KindMOVE, r.Instruction.Kind)
	require.Equal(t, uint32(0x42), cpu.reg.D[0]&0xFF)
	require.Equal(t, startSP+2, cpu.reg.A[7], "A7 post-increment must be word-aligned for byte size")
}

// TestMOVEMPushPopRoundTrip pushes D0/D1/A0 to the stack with predecrement
// MOVEM.L, clobbers them, then restores with postincrement MOVEM.L and
// checks every register comes back unchanged. The two forms name the same
// registers with opposite mask bit orders.
func TestMOVEMPushPopRoundTrip(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	const pushMask = 0xC080 // D0, D1, A0 in pre-decrement order (bit15=D0, bit14=D1, bit7=A0)
	const popMask = 0x0103  // D0, D1, A0 (bit0=D0, bit1=D1, bit8=A0)
	bus.loadWords(0x1000, 0x48E7, pushMask) // MOVEM.L D0/D1/A0,-(A7)
	bus.loadWords(0x1004, 0x4CDF, popMask)  // MOVEM.L (A7)+,D0/D1/A0

	cpu.reg.D[0] = 0x11111111
	cpu.reg.D[1] = 0x22222222
	cpu.reg.A[0] = 0x33333333
	startSP := cpu.reg.A[7]

	r := cpu.Step()
	require.Equal(t, KindMOVEM, r.Instruction.Kind)
	require.Equal(t, startSP-12, cpu.reg.A[7])

	cpu.reg.D[0], cpu.reg.D[1], cpu.reg.A[0] = 0, 0, 0

	r = cpu.Step()
	require.Equal(t, KindMOVEM, r.Instruction.Kind)
	require.Equal(t, uint32(0x11111111), cpu.reg.D[0])
	require.Equal(t, uint32(0x22222222), cpu.reg.D[1])
	require.Equal(t, uint32(0x33333333), cpu.reg.A[0])
	require.Equal(t, startSP, cpu.reg.A[7], "postincrement restore must return A7 to its original value")
}

// TestMOVEMPreDecMaskBitOrderReversed decodes a hand-encoded
// MOVEM.L D0-D7/A0-A6,-(A7) (the canonical function-prologue register
// save) and checks the save lands in the documented order: for a
// pre-decrement destination the mask's LSB designates A7 (excluded here)
// and its MSB designates D0, the opposite of every other addressing
// mode. TestMOVEMPushPopRoundTrip only checks that the registers come
// back; this test instead pins down where each register actually lands.
func TestMOVEMPreDecMaskBitOrderReversed(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	const mask = 0xFFFE // bit0=A7 clear, bits1-7=A6..A0, bits8-15=D7..D0
	bus.loadWords(0x1000, 0x48E7, mask) // MOVEM.L D0-D7/A0-A6,-(A7)

	for i := 0; i < 8; i++ {
		cpu.reg.D[i] = 0x100 + uint32(i)
	}
	for i := 0; i < 7; i++ {
		cpu.reg.A[i] = 0x200 + uint32(i)
	}
	startSP := cpu.reg.A[7]

	r := cpu.Step()
	require.Equal(t, KindMOVEM, r.Instruction.Kind)
	require.Equal(t, startSP-60, cpu.reg.A[7], "15 registers of 4 bytes each")

	// Highest address (pushed first) holds A6, descending through A0,
	// then D7 down to D0 at the lowest (final SP) address.
	wantOrder := []uint32{0x206, 0x205, 0x204, 0x203, 0x202, 0x201, 0x200,
		0x107, 0x106, 0x105, 0x104, 0x103, 0x102, 0x101, 0x100}
	for k, want := range wantOrder {
		addr := startSP - uint32(4*(k+1))
		got, ok := bus.GetLong(addr)
		require.True(t, ok)
		require.Equal(t, want, got, "register at stack slot %d (addr %06x)", k, addr)
	}
}

// TestDisassembleMOVEMPreDecUsesReversedMask checks the disassembler
// renders the reversed pre-decrement mask as the correct register list
// text instead of the raw (wrong) bit-to-register mapping.
func TestDisassembleMOVEMPreDecUsesReversedMask(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	bus.loadWords(0x2000, 0x48E7, 0xFFFE) // MOVEM.L D0-D7/A0-A6,-(A7)

	inst, _ := cpu.PeekDecode(0x2000)
	require.Equal(t, "MOVEM.L D0-D7/A0-A6, -(A7)", Disassemble(inst))
}

// TestDIVSZeroDivideTraps confirms DIVS #0,D0 raises vecDivideByZero
// rather than crashing, and that the trap is serviced on the following
// Step with PC loaded from the vector table.
func TestDIVSZeroDivideTraps(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x81FC, 0x0000) // DIVS.W #0,D0
	bus.SetLong(uint32(vecDivideByZero)*4, 0x2000)
	cpu.reg.D[0] = 10

	r := cpu.Step()
	require.Equal(t, KindDIVS, r.Instruction.Kind)
	require.False(t, r.Exception, "the faulting instruction's own Step must not report the trap yet")

	r = cpu.Step()
	require.True(t, r.Exception)
	require.Equal(t, vecDivideByZero, r.Vector)
	require.Equal(t, uint32(0x2000), cpu.reg.PC)
}

// TestABCDWithExtend checks packed-BCD addition folds in the X flag: 09 +
// 01 + X(1) corrects to 0x11 with no decimal carry out.
func TestABCDWithExtend(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0xC101) // ABCD D1,D0
	cpu.reg.D[0] = 0x09
	cpu.reg.D[1] = 0x01
	cpu.reg.SR |= flagX

	r := cpu.Step()
	require.Equal(t, KindABCD, r.Instruction.Kind)
	require.Equal(t, uint32(0x11), cpu.reg.D[0]&0xFF)
	require.False(t, cpu.flagSet(flagC), "no decimal carry expected out of this addition")
}

// TestBccZeroByteDisplacement exercises the 0x00 displacement-byte
// sentinel, which pulls a 16-bit word extension for the true branch
// target instead of encoding the displacement inline.
func TestBccZeroByteDisplacement(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x6700, 0x0010) // BEQ.W +16 (from PC+2)
	cpu.reg.SR |= flagZ

	r := cpu.Step()
	require.Equal(t, KindBcc, r.Instruction.Kind)
	require.Equal(t, uint32(0x1012), cpu.reg.PC, "target is inst.PC+2+disp regardless of extension width")
}
