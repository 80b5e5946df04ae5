package m68k

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestANDClearsVAndCSetsNZ checks AND.L D1,D0 against a negative result:
// logical ops must clear V and C unconditionally regardless of the operands.
func TestANDClearsVAndCSetsNZ(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0xC081) // AND.L D1,D0
	cpu.reg.SR |= flagV | flagC
	cpu.reg.D[0] = 0xFFFFFFFF
	cpu.reg.D[1] = 0x80000001

	r := cpu.Step()
	require.Equal(t, KindAND, r.Instruction.Kind)
	require.Equal(t, uint32(0x80000001), cpu.reg.D[0])
	require.True(t, cpu.flagSet(flagN))
	require.False(t, cpu.flagSet(flagZ))
	require.False(t, cpu.flagSet(flagV))
	require.False(t, cpu.flagSet(flagC))
}

// TestORISetsZeroFlag exercises ORI.W #0,D0 against a zero destination.
func TestORISetsZeroFlag(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x0040, 0x0000) // ORI.W #0,D0
	cpu.reg.D[0] = 0

	r := cpu.Step()
	require.Equal(t, KindORI, r.Instruction.Kind)
	require.Equal(t, uint32(0), cpu.reg.D[0])
	require.True(t, cpu.flagSet(flagZ))
}

// TestNOTComplementsAndSetsFlags exercises NOT.B on a data register.
func TestNOTComplementsAndSetsFlags(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x4600) // NOT.B D0
	cpu.reg.D[0] = 0x0000005A

	r := cpu.Step()
	require.Equal(t, KindNOT, r.Instruction.Kind)
	require.Equal(t, uint32(0xA5), cpu.reg.D[0]&0xFF)
	require.True(t, cpu.flagSet(flagN))
}

// TestANDItoCCRMasksOutUnsetBits confirms the CCR-only immediate-logical
// form never touches the upper byte of SR (supervisor/trace/interrupt mask).
func TestANDItoCCRMasksOutUnsetBits(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000)
	defer dumpOnFail(t, cpu)()

	bus.loadWords(0x1000, 0x023C, 0x0000) // ANDI #$00,CCR
	cpu.reg.SR = flagS | flagX | flagN | flagZ | flagV | flagC

	r := cpu.Step()
	require.Equal(t, KindANDItoCCR, r.Instruction.Kind)
	require.Equal(t, uint16(0), cpu.reg.SR&0xFF)
	require.Equal(t, flagS, cpu.reg.SR&flagS, "supervisor bit must survive a CCR-only immediate op")
}
