package main

import (
	"fmt"
	"os"
	"time"

	"github.com/karthago1/tchart/terminal"
	"github.com/karthago1/tchart/terminal/tui"
)

var (
	bgColor     = terminal.RGB{R: 20, G: 20, B: 30}
	fgColor     = terminal.RGB{R: 200, G: 200, B: 200}
	borderColor = terminal.RGB{R: 80, G: 100, B: 140}
	accentColor = terminal.RGB{R: 100, G: 200, B: 220}
	dimColor    = terminal.RGB{R: 100, G: 100, B: 100}
	headerBg    = terminal.RGB{R: 40, G: 50, B: 70}
)

type app struct {
	data    []uint64
	data2   []uint64
	data3   []uint64
	labels  []string
	history []float64

	barStyles   []tui.Style
	valueStyles []tui.Style
}

func newApp() *app {
	bars := tui.SeriesPalette(3)

	values := make([]tui.Style, len(bars))
	for i, st := range bars {
		values[i] = tui.Style{Fg: terminal.RGB{R: 10, G: 10, B: 10}, Bg: st.Fg}
	}

	return &app{
		data:        []uint64{9, 12, 5, 8, 11, 7},
		data2:       []uint64{6, 11, 4, 5, 9, 3},
		data3:       []uint64{3, 7, 8, 2, 6, 10},
		labels:      []string{"30°C", "50°C", "60°C", "80°C", "90°C", "110°C"},
		barStyles:   bars,
		valueStyles: values,
	}
}

// onTick shifts every series one group to the left
func (a *app) onTick() {
	rotate(a.data)
	rotate(a.data2)
	rotate(a.data3)

	a.history = append(a.history, float64(a.data[0]))
	if len(a.history) > 256 {
		a.history = a.history[1:]
	}
}

func rotate(values []uint64) {
	if len(values) < 2 {
		return
	}
	first := values[0]
	copy(values, values[1:])
	values[len(values)-1] = first
}

func main() {
	term := terminal.New()
	if err := term.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer term.Fini()

	// Dedicated input goroutine
	eventCh := make(chan terminal.Event, 16)
	go func() {
		for {
			ev := term.PollEvent()
			eventCh <- ev
			if ev.Type == terminal.EventClosed || ev.Type == terminal.EventError {
				return
			}
		}
	}()

	a := newApp()
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventCh:
			switch ev.Type {
			case terminal.EventKey:
				if ev.Key == terminal.KeyCtrlC || ev.Key == terminal.KeyEscape ||
					(ev.Key == terminal.KeyRune && ev.Rune == 'q') {
					return
				}
				if ev.Key == terminal.KeyCtrlL {
					term.Sync()
				}
			case terminal.EventClosed, terminal.EventError:
				return
			}
		case <-ticker.C:
			a.onTick()
		}

		w, h := term.Size()
		cells := make([]terminal.Cell, w*h)

		root := tui.NewRegion(cells, w, 0, 0, w, h)
		root.Fill(bgColor)

		render(root, a)

		term.Flush(cells, w, h)
	}
}

func render(root tui.Region, a *app) {
	header, body := tui.SplitVFixed(root, 1)
	header.Fill(headerBg)
	header.Text(1, 0, "BARCHART DEMO", accentColor, headerBg, terminal.AttrBold)
	header.TextRight(0, "q/Esc: quit ", dimColor, headerBg, terminal.AttrNone)

	content, footer := tui.SplitVFixed(body, body.H-1)
	footer.Fill(headerBg)
	footer.Text(1, 0, "trend:", dimColor, headerBg, terminal.AttrNone)
	footer.Sparkline(8, 0, footer.W-9, a.history, tui.SparklineOpts{
		Style: tui.Style{Fg: accentColor, Bg: headerBg},
	})

	rows := tui.SplitV(content, 0.5, 0.5)

	grouped := tui.NewBarChart().
		Pane(tui.PaneOpts{Title: "Data1", Border: tui.LineSingle, BorderFg: borderColor, TitleFg: fgColor, Bg: bgColor}).
		AddSeries(a.data).
		AddSeries(a.data2).
		AddSeries(a.data3).
		BarWidth(9).
		Labels(a.labels).
		BarStyles(a.barStyles).
		ValueStyles(a.valueStyles).
		ValueFormat(func(v uint64) string { return fmt.Sprintf("%d°", v+20) })
	grouped.Render(rows[0])

	// Narrow terminals stack the bottom pair instead of splitting it
	var panes []tui.Region
	if tui.BreakpointH(rows[1].W, 80) == 0 {
		panes = tui.SplitH(rows[1], 0.5, 0.5)
	} else {
		panes = tui.SplitV(rows[1], 0.5, 0.5)
	}

	paired := tui.NewBarChart().
		Pane(tui.PaneOpts{Title: "Data2", Border: tui.LineSingle, BorderFg: borderColor, TitleFg: fgColor, Bg: bgColor}).
		AddSeries(a.data).
		AddSeries(a.data2).
		BarWidth(5).
		GroupGap(3).
		BarStyles(a.barStyles).
		ValueStyles(a.valueStyles)
	paired.Render(panes[0])

	single := tui.NewBarChart().
		Pane(tui.PaneOpts{Title: "Data3", Border: tui.LineSingle, BorderFg: borderColor, TitleFg: fgColor, Bg: bgColor}).
		AddSeries(a.data3).
		BarWidth(7).
		BarGap(0).
		Max(20).
		Labels(a.labels).
		LabelStyle(tui.Style{Fg: dimColor}).
		BarStyles([]tui.Style{{Fg: accentColor}})
	single.Render(panes[1])
}
