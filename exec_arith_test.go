package m68k

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMULUTreatsBothOperandsAsUnsigned multiplies two values that would be
// negative if read as signed words, confirming MULU's 32-bit product is
// computed unsigned.
func TestMULUTreatsBothOperandsAsUnsigned(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0xC0C1) // MULU D1,D0
	cpu.reg.D[0] = 0xFFFF         // 65535 unsigned
	cpu.reg.D[1] = 0x0002

	r := cpu.Step()
	require.Equal(t, KindMULU, r.Instruction.Kind)
	require.Equal(t, uint32(0x1FFFE), cpu.reg.D[0])
}

// TestMULSSignExtendsBothOperands multiplies -1 by 5 and expects -5.
func TestMULSSignExtendsBothOperands(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0xC1C1) // MULS D1,D0
	cpu.reg.D[0] = 0xFFFF         // -1
	cpu.reg.D[1] = 0x0005

	r := cpu.Step()
	require.Equal(t, KindMULS, r.Instruction.Kind)
	require.Equal(t, int32(-5), int32(cpu.reg.D[0]))
}

// TestDIVUSplitsQuotientAndRemainder divides 100 by 7 and checks the
// remainder lands in the high word, quotient in the low word.
func TestDIVUSplitsQuotientAndRemainder(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x80FC, 0x0007) // DIVU.W #7,D0
	cpu.reg.D[0] = 100

	r := cpu.Step()
	require.Equal(t, KindDIVU, r.Instruction.Kind)
	require.Equal(t, uint32(14), cpu.reg.D[0]&0xFFFF)
	require.Equal(t, uint32(2), cpu.reg.D[0]>>16)
}

// TestDIVSNegativeDividend divides -100 by 7, checking the truncating
// (toward zero) quotient and the N flag of the negative result.
func TestDIVSNegativeDividend(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x81FC, 0x0007) // DIVS.W #7,D0
	cpu.reg.D[0] = 0xFFFFFF9C // -100

	r := cpu.Step()
	require.Equal(t, KindDIVS, r.Instruction.Kind)
	require.Equal(t, int16(-14), int16(cpu.reg.D[0]&0xFFFF))
	require.True(t, cpu.flagSet(flagN))
}

// TestCHKDoesNotTrapAtUpperBound checks that a value equal to the upper
// bound is in range: no CHK exception is raised.
func TestCHKDoesNotTrapAtUpperBound(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x4180) // CHK D0,D0 (bound in D0, value in D0)
	bus.SetLong(uint32(vecCHK)*4, 0x3000)
	cpu.reg.D[0] = 10 // bound 10, value 10 (via same register) stays in range

	r := cpu.Step()
	require.Equal(t, KindCHK, r.Instruction.Kind)
	require.False(t, r.Exception)
	require.False(t, cpu.pending.has(vecCHK))
}

// TestEXTWordToLongSignExtends exercises EXT.L on a data register whose
// low word is negative, checking the upper word fills with ones.
func TestEXTWordToLongSignExtends(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x48C0) // EXT.L D0
	cpu.reg.D[0] = 0x0000FFF0     // -16 as a word

	r := cpu.Step()
	require.Equal(t, KindEXT, r.Instruction.Kind)
	require.Equal(t, int32(-16), int32(cpu.reg.D[0]))
}
