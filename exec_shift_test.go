package m68k

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLSLRegisterCountShiftsOutCarry exercises the register-count form of
// LSL (count taken from a data register, modulo 64) and checks the last
// bit shifted out lands in both C and X.
func TestLSLRegisterCountShiftsOutCarry(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0xE3A8) // LSL.L D1,D0 (register-count form)
	cpu.reg.D[0] = 0x40000000
	cpu.reg.D[1] = 2

	r := cpu.Step()
	require.Equal(t, KindLSL, r.Instruction.Kind)
	require.Equal(t, uint32(0x00000000), cpu.reg.D[0])
	require.True(t, cpu.flagSet(flagC))
	require.True(t, cpu.flagSet(flagX))
	require.True(t, cpu.flagSet(flagZ))
}

// TestASLImmediateCountDetectsOverflow checks that a sign change caused
// by an immediate-count ASL (count 1 here) sets V.
func TestASLImmediateCountDetectsOverflow(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0xE300) // ASL.B #1,D0
	cpu.reg.D[0] = 0x40 // 0100_0000, shifting left once flips the sign bit

	r := cpu.Step()
	require.Equal(t, KindASL, r.Instruction.Kind)
	require.Equal(t, uint32(0x80), cpu.reg.D[0]&0xFF)
	require.True(t, cpu.flagSet(flagV))
}

// TestROXLCarriesExtendThroughRotation exercises ROXL.B #1,D0 with X set
// beforehand: the incoming X value is rotated in at bit 0, and the bit
// shifted out becomes the new X/C.
func TestROXLCarriesExtendThroughRotation(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0xE310) // ROXL.B #1,D0
	cpu.reg.D[0] = 0x01
	cpu.reg.SR |= flagX

	r := cpu.Step()
	require.Equal(t, KindROXL, r.Instruction.Kind)
	require.Equal(t, uint32(0x03), cpu.reg.D[0]&0xFF, "bit 0 held the old X value, rotated in")
	require.False(t, cpu.flagSet(flagC), "bit shifted out of a 0x01 byte is 0")
}

// TestRORWrapsBottomBitToTop exercises a static-count ROR without
// involving X, confirming the wraparound lands in both the MSB and C.
func TestRORWrapsBottomBitToTop(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0xE218) // ROR.B #1,D0
	cpu.reg.D[0] = 0x01

	r := cpu.Step()
	require.Equal(t, KindROR, r.Instruction.Kind)
	require.Equal(t, uint32(0x80), cpu.reg.D[0]&0xFF)
	require.True(t, cpu.flagSet(flagC))
}
