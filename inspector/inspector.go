// Package inspector is a read-only TUI bit-field viewer for opcodes
// produced or consumed by package codec. It never re-encodes or mutates
// the codec it is given; it only renders what has already happened.
package inspector

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/armcodec/codec"
)

// Entry is one opcode the inspector knows about: its address, its raw
// words (one for Arm, one or two for Thumb), and the rendered
// instruction that produced or was decoded from it.
type Entry struct {
	Address     uint32
	Words       []uint32
	WordBits    int // 16 or 32
	Instruction string
}

// Inspector is the TUI bit-field viewer.
type Inspector struct {
	Codec *codec.InstructionCodec

	App      *tview.Application
	Pages    *tview.Pages
	Layout   *tview.Flex
	ListView *tview.List
	BitsView *tview.TextView
	TrailView *tview.TextView

	entries  []Entry
	selected int
}

// New builds an Inspector over codec, with no entries yet. Use Append to
// add opcodes as they are encoded or decoded.
func New(c *codec.InstructionCodec) *Inspector {
	insp := &Inspector{
		Codec: c,
		App:   tview.NewApplication(),
	}
	insp.initializeViews()
	insp.buildLayout()
	insp.setupKeyBindings()
	return insp
}

// Append adds an opcode entry to the instruction list and refreshes the
// selection onto it.
func (insp *Inspector) Append(e Entry) {
	insp.entries = append(insp.entries, e)
	insp.selected = len(insp.entries) - 1
	insp.refresh()
}

func (insp *Inspector) initializeViews() {
	insp.ListView = tview.NewList().ShowSecondaryText(false)
	insp.ListView.SetBorder(true).SetTitle(" Instructions ")

	insp.BitsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	insp.BitsView.SetBorder(true).SetTitle(" Bit fields ")

	insp.TrailView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	insp.TrailView.SetBorder(true).SetTitle(" Cursor trail ")
}

func (insp *Inspector) buildLayout() {
	right := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(insp.BitsView, 0, 2, false).
		AddItem(insp.TrailView, 0, 1, false)

	insp.Layout = tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(insp.ListView, 0, 1, true).
		AddItem(right, 0, 2, false)

	insp.Pages = tview.NewPages().AddPage("main", insp.Layout, true, true)
}

func (insp *Inspector) setupKeyBindings() {
	insp.ListView.SetChangedFunc(func(index int, _ string, _ string, _ rune) {
		insp.selected = index
		insp.renderBits()
	})

	insp.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			insp.App.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				insp.App.Stop()
				return nil
			}
		}
		return event
	})
}

// Run starts the TUI event loop. It blocks until the user quits.
func (insp *Inspector) Run() error {
	return insp.App.SetRoot(insp.Pages, true).SetFocus(insp.ListView).Run()
}

func (insp *Inspector) refresh() {
	insp.ListView.Clear()
	for i, e := range insp.entries {
		label := fmt.Sprintf("%#08x  %s", e.Address, e.Instruction)
		idx := i
		insp.ListView.AddItem(label, "", 0, func() { insp.selected = idx; insp.renderBits() })
	}
	if len(insp.entries) > 0 {
		insp.ListView.SetCurrentItem(insp.selected)
	}
	insp.renderBits()
	insp.renderTrail()
}

func (insp *Inspector) renderBits() {
	insp.BitsView.Clear()
	if insp.selected < 0 || insp.selected >= len(insp.entries) {
		fmt.Fprint(insp.BitsView, "[yellow]No opcode selected[white]")
		return
	}
	e := insp.entries[insp.selected]
	for i, w := range e.Words {
		fmt.Fprintf(insp.BitsView, "word %d: %s\n", i, formatBitField(w, e.WordBits))
	}
}

func (insp *Inspector) renderTrail() {
	insp.TrailView.Clear()
	fmt.Fprintf(insp.TrailView, "cursor: %#08x\n", insp.Codec.Address())
	var trail []string
	for _, e := range insp.entries {
		trail = append(trail, fmt.Sprintf("%#x", e.Address))
	}
	fmt.Fprint(insp.TrailView, strings.Join(trail, " -> "))
}

// formatBitField renders the low bits of word as binary digits, most
// significant first, grouped in nibbles separated by spaces; the fields
// are not labelled.
func formatBitField(word uint32, bits int) string {
	var b strings.Builder
	for i := bits - 1; i >= 0; i-- {
		if (word>>uint(i))&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
		if i%4 == 0 && i != 0 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
