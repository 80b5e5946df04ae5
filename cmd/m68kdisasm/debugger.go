package main

import (
	"fmt"
	"strings"

	"github.com/68kcore/m68k"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// model is the bubbletea model for the single-step debugger: one tick
// per keypress, mirroring the step/run split of m68k.CPU.Step.
type model struct {
	cpu    *m68k.CPU
	bus    *flatBus
	offset uint32
	prevPC uint32
	last   m68k.StepResult
	err    error
	quit   bool
}

const bytesPerRow = 16
const rowsShown = 8

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case " ", "s":
			m.prevPC = m.cpu.Registers().PC
			m.last = m.cpu.Step()
		case "r":
			for i := 0; i < 1000 && !m.cpu.Stopped(); i++ {
				m.last = m.cpu.Step()
			}
		}
	}
	return m, nil
}

func (m model) renderRow(start uint32) string {
	s := fmt.Sprintf("%06X | ", start)
	pc := m.cpu.Registers().PC
	for i := uint32(0); i < bytesPerRow; i++ {
		b, _ := m.bus.GetByte(start + i)
		if start+i == pc {
			s += fmt.Sprintf("[%02X]", b)
		} else {
			s += fmt.Sprintf(" %02X ", b)
		}
	}
	return s
}

func (m model) memoryView() string {
	pc := m.cpu.Registers().PC
	base := (pc / bytesPerRow) * bytesPerRow
	if base >= uint32(rowsShown/2*bytesPerRow) {
		base -= uint32(rowsShown / 2 * bytesPerRow)
	} else {
		base = 0
	}
	var rows []string
	for i := 0; i < rowsShown; i++ {
		rows = append(rows, m.renderRow(base+uint32(i*bytesPerRow)))
	}
	return strings.Join(rows, "\n")
}

func (m model) statusView() string {
	r := m.cpu.Registers()
	var b strings.Builder
	fmt.Fprintf(&b, "PC: %06X (was %06X)\n", r.PC, m.prevPC)
	for i, d := range r.D {
		fmt.Fprintf(&b, "D%d: %08X  ", i, d)
		if i%2 == 1 {
			b.WriteByte('\n')
		}
	}
	for i, a := range r.A {
		fmt.Fprintf(&b, "A%d: %08X  ", i, a)
		if i%2 == 1 {
			b.WriteByte('\n')
		}
	}
	fmt.Fprintf(&b, "USP: %08X  SSP: %08X\n", r.USP, r.SSP)
	fmt.Fprintf(&b, "SR: %04X  cycles: %d\n", r.SR, m.cpu.Cycles())
	if m.cpu.Stopped() {
		b.WriteString("STOPPED\n")
	}
	if m.last.Exception {
		fmt.Fprintf(&b, "exception vector %d serviced\n", m.last.Vector)
	}
	return b.String()
}

func (m model) instructionView() string {
	if m.last.Instruction.Kind == m68k.KindUnknown && !m.last.Exception {
		inst, _ := m.cpu.PeekDecode(m.cpu.Registers().PC)
		return "next: " + m68k.Disassemble(inst)
	}
	return "last: " + m68k.Disassemble(m.last.Instruction) + "\n" + spew.Sdump(m.last.Instruction.Operands)
}

func (m model) View() string {
	help := "space/s: step   r: run   q: quit"
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.memoryView(), "   ", m.statusView()),
		"",
		m.instructionView(),
		"",
		help,
	)
}

// runDebugger loads program at offset into a flat bus and starts an
// interactive single-step TUI over it.
func runDebugger(program []byte, offset uint32, variant m68k.Variant) error {
	bus := newFlatBus()
	bus.loadAt(offset, program)
	cpu := m68k.New(bus, variant)
	cpu.SetState(m68k.Registers{PC: offset})

	final, err := tea.NewProgram(model{cpu: cpu, bus: bus, offset: offset, prevPC: offset}).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
