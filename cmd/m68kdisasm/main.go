// Command m68kdisasm disassembles, runs, and interactively debugs
// MC68000/SCC68070 binaries against the m68k core.
package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/68kcore/m68k"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "m68kdisasm",
		Short: "Disassemble, run, and debug MC68000/SCC68070 binaries",
	}

	var org, disasmOrg uint32
	var variantName string

	disasmCmd := &cobra.Command{
		Use:   "disasm [binary]",
		Short: "Disassemble a flat binary image starting at --org",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			bus := newFlatBus()
			bus.loadAt(disasmOrg, data)
			cpu := m68k.New(bus, variantFor(variantName))
			cpu.SetState(m68k.Registers{PC: disasmOrg})
			return disasmRange(cpu, disasmOrg, disasmOrg+uint32(len(data)))
		},
	}
	disasmCmd.Flags().Uint32Var(&disasmOrg, "org", 0, "load/start address")
	disasmCmd.Flags().StringVar(&variantName, "variant", "mc68000", "CPU variant: mc68000 or scc68070")

	var steps int
	var traceFlag bool
	runCmd := &cobra.Command{
		Use:   "run [binary]",
		Short: "Load a flat binary at --org and run it for --steps instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			bus := newFlatBus()
			bus.loadAt(org, data)
			ssp := make([]byte, 4)
			binary.BigEndian.PutUint32(ssp, 0x00F00000)
			bus.loadAt(0, ssp)
			pc := make([]byte, 4)
			binary.BigEndian.PutUint32(pc, org)
			bus.loadAt(4, pc)

			cpu := m68k.New(bus, variantFor(variantName))
			for i := 0; i < steps; i++ {
				r := cpu.Step()
				if traceFlag {
					fmt.Printf("%06X  %s\n", r.Instruction.PC, m68k.Disassemble(r.Instruction))
				}
				if r.Exception {
					fmt.Printf("exception vector %d serviced at cycle %d\n", r.Vector, cpu.Cycles())
				}
				if cpu.Stopped() {
					fmt.Println("CPU stopped")
					break
				}
			}
			regs := cpu.Registers()
			fmt.Printf("PC=%06X SR=%04X cycles=%d\n", regs.PC, regs.SR, cpu.Cycles())
			return nil
		},
	}
	runCmd.Flags().Uint32Var(&org, "org", 0x1000, "load address and initial PC")
	runCmd.Flags().StringVar(&variantName, "variant", "mc68000", "CPU variant: mc68000 or scc68070")
	runCmd.Flags().IntVar(&steps, "steps", 1000, "maximum instructions to execute")
	runCmd.Flags().BoolVar(&traceFlag, "trace", false, "print each instruction as it executes")

	debugCmd := &cobra.Command{
		Use:   "debug [binary]",
		Short: "Interactively single-step a binary in a terminal UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			return runDebugger(data, org, variantFor(variantName))
		},
	}
	debugCmd.Flags().Uint32Var(&org, "org", 0x1000, "load address and initial PC")
	debugCmd.Flags().StringVar(&variantName, "variant", "mc68000", "CPU variant: mc68000 or scc68070")

	rootCmd.AddCommand(disasmCmd, runCmd, debugCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func variantFor(name string) m68k.Variant {
	if name == "scc68070" {
		return m68k.SCC68070
	}
	return m68k.MC68000
}

// disasmRange decodes and prints every instruction from start to end,
// advancing by each instruction's own consumed length.
func disasmRange(cpu *m68k.CPU, start, end uint32) error {
	addr := start
	for addr < end {
		inst, next := cpu.PeekDecode(addr)
		fmt.Printf("%06X  %s\n", addr, m68k.Disassemble(inst))
		if next <= addr {
			next = addr + 2 // illegal/unknown opcode: advance past the word
		}
		addr = next
	}
	return nil
}
