package ui

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/phosphor/internal/anim"
	"github.com/five82/phosphor/internal/entropy"
)

// Options configures the display.
type Options struct {
	Context context.Context

	Source entropy.Source  // required
	Lines  anim.LineSource // required
	Clock  anim.Clock      // nil uses the wall clock
	Banner []string

	FrameInterval time.Duration // zero uses anim.DefaultFrameInterval
	LineHeight    float64
	MinCapacity   int
	Jitter        bool

	ThemeName string
	Border    bool
}

func (o Options) clock() anim.Clock {
	if o.Clock == nil {
		return anim.SystemClock{}
	}
	return o.Clock
}

func (o Options) interval() time.Duration {
	if o.FrameInterval <= 0 {
		return anim.DefaultFrameInterval
	}
	return o.FrameInterval
}

func (o Options) driverOptions() anim.Options {
	return anim.Options{
		Source:      o.Source,
		Lines:       o.Lines,
		Clock:       o.Clock,
		MinCapacity: o.MinCapacity,
		Jitter:      o.Jitter,
	}
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	driver   *anim.Driver
	screen   *screen
	clock    anim.Clock
	keys     keyMap
	theme    Theme
	banner   []string
	interval time.Duration
	border   bool

	// UI state
	width  int
	height int
	ready  bool
	now    time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	scr := newScreen(opts.LineHeight)
	return Model{
		driver:   anim.New(opts.driverOptions(), scr),
		screen:   scr,
		clock:    opts.clock(),
		keys:     DefaultKeyMap(),
		theme:    GetTheme(opts.ThemeName),
		banner:   opts.Banner,
		interval: opts.interval(),
		border:   opts.Border,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if !m.ready {
			// The first size is the first moment the screen can be measured.
			m.now = m.clock.Now()
			m.driver.Seed(m.now, m.banner)
			m.ready = true
			return m, nil
		}
		m.driver.Resize()
		return m, nil

	case tickMsg:
		if m.ready {
			m.now = time.Time(msg)
			m.driver.Tick(m.now)
		}
		return m, tickCmd(m.interval)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	styles := m.theme.Styles()
	body := m.screen.Render(styles, NewBgStyle(m.theme.Screen), m.now, m.driver.Context().Version)
	if m.border {
		body = m.renderFrame(body, m.screen.vp.Width+frameBorderCols, m.screen.vp.Height+frameBorderRows)
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		body,
		lipgloss.WithWhitespaceBackground(styles.Background.GetBackground()),
	)
}

// layout sizes the screen to the window, leaving room for the frame.
func (m *Model) layout() {
	width, height := m.width, m.height
	if m.border {
		width -= frameBorderCols
		height -= frameBorderRows
	}
	m.screen.SetSize(width, height)
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		st := m.driver.Context()
		snap := st.Snapshot()
		log.Printf("stopped: %d ticks, %d lines typed, %d evicted, %d buffered, %d runes untyped",
			snap.Stats.Ticks, snap.Stats.Completed, snap.Stats.Evicted, len(snap.Lines), st.Typing.Remaining())
	}
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
