package m68k

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBTSTDynamicAgainstDataRegister checks the register-numbered dynamic
// form tests bit modulo 32 and leaves the destination unmodified.
func TestBTSTDynamicAgainstDataRegister(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x0300) // BTST D1,D0 (dn=1 -> bits9-11=001)
	cpu.reg.D[0] = 1 << 3
	cpu.reg.D[1] = 3 + 32 // bit number 35 mod 32 = 3

	r := cpu.Step()
	require.Equal(t, KindBTST, r.Instruction.Kind)
	require.False(t, cpu.flagSet(flagZ), "bit 3 of D0 is set, so Z must clear")
	require.Equal(t, uint32(1<<3), cpu.reg.D[0], "BTST never writes its destination")
}

// TestBSETStaticSetsBitAndReportsPriorState exercises the static
// (immediate bit number) form against a byte-sized memory destination.
func TestBSETStaticSetsBitAndReportsPriorState(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x08D0, 0x0002) // BSET.B #2,(A0)
	cpu.reg.A[0] = 0x2000
	bus.SetByte(0x2000, 0x00)

	r := cpu.Step()
	require.Equal(t, KindBSET, r.Instruction.Kind)
	require.True(t, cpu.flagSet(flagZ), "bit was clear before the set, so Z must be reported set")
	val, _ := bus.GetByte(0x2000)
	require.Equal(t, uint8(0x04), val)
}

// TestBCLRModuloEightOnMemory confirms a memory destination's bit number
// wraps modulo 8, not modulo 32 as for a data-register destination.
func TestBCLRModuloEightOnMemory(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x0190) // BCLR D0,(A0)
	cpu.reg.D[0] = 9              // 9 mod 8 = 1
	cpu.reg.A[0] = 0x2000
	bus.SetByte(0x2000, 0xFF)

	r := cpu.Step()
	require.Equal(t, KindBCLR, r.Instruction.Kind)
	val, _ := bus.GetByte(0x2000)
	require.Equal(t, uint8(0xFD), val)
}
