// Package term renders figures into the terminal with tcell. Images
// are drawn as half-block cells (two pixels per character cell),
// overlays as half-block line segments, labels as styled text. One
// tcell screen backs each figure.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/samplescope/internal/render"
)

// Backend creates terminal figures.
type Backend struct {
	theme Theme

	// newScreen allows tests to substitute a simulation screen.
	newScreen func() (tcell.Screen, error)
}

// NewBackend builds a backend using the named theme.
func NewBackend(theme string) *Backend {
	return &Backend{theme: GetTheme(theme), newScreen: tcell.NewScreen}
}

type figure struct {
	screen tcell.Screen
	title  string
	theme  Theme
	events chan tcell.Event
	quit   chan struct{}
	stop   bool
	closed bool
}

// NewFigure initializes a screen and starts its event loop. The size
// hint is ignored: the terminal decides the window size.
func (b *Backend) NewFigure(cfg render.FigureConfig) (render.Figure, error) {
	s, err := b.newScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()
	s.Clear()

	f := &figure{
		screen: s,
		title:  cfg.Title,
		theme:  b.theme,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	go s.ChannelEvents(f.events, f.quit)
	f.drawTitle()
	return f, nil
}

func (f *figure) drawTitle() {
	w, _ := f.screen.Size()
	style := tcell.StyleDefault.Foreground(toTcell(mustParse(f.theme.Title))).Bold(true)
	frame := tcell.StyleDefault.Foreground(toTcell(mustParse(f.theme.Frame)))
	for x := 0; x < w; x++ {
		f.screen.SetContent(x, 0, '─', nil, frame)
	}
	for i, r := range " " + f.title + " " {
		if 2+i >= w {
			break
		}
		f.screen.SetContent(2+i, 0, r, nil, style)
	}
}

func (f *figure) Subplot(row, col, nrows, ncols int) (render.Axes, error) {
	if row < 0 || row >= nrows || col < 0 || col >= ncols {
		return nil, fmt.Errorf("term: subplot (%d,%d) outside %dx%d grid", row, col, nrows, ncols)
	}
	return &axes{fig: f, row: row, col: col, nrows: nrows, ncols: ncols}, nil
}

func (f *figure) Draw() {
	f.drawTitle()
	f.screen.Show()
}

// Wait blocks until a key press or the timeout. Resize events redraw
// and keep waiting; q and ctrl-c additionally flag a stop request the
// driver may poll via StopRequested.
func (f *figure) Wait(timeout time.Duration) bool {
	var deadline <-chan time.Time
	if timeout > 0 {
		deadline = time.After(timeout)
	}
	for {
		if timeout <= 0 {
			select {
			case ev := <-f.events:
				if f.handle(ev) {
					return true
				}
			default:
				return false
			}
			continue
		}
		select {
		case ev := <-f.events:
			if f.handle(ev) {
				return true
			}
		case <-deadline:
			return false
		}
	}
}

func (f *figure) handle(ev tcell.Event) (key bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
		return false
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
			f.stop = true
		}
		return true
	}
	return false
}

// StopRequested reports whether the user asked to stop (q, escape or
// ctrl-c). Drivers poll this between elements.
func (f *figure) StopRequested() bool { return f.stop }

// Close restores the terminal. Safe to call more than once.
func (f *figure) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	close(f.quit)
	f.screen.Fini()
	return nil
}
