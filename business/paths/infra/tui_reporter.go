package infra

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	tuiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7C3AED")).
			Padding(0, 2)

	tuiCountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	tuiDoneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))
)

// Bubble Tea messages for progress events.
type startMsg struct{ total int }
type advanceMsg struct{ n int }
type doneMsg struct {
	generated int
	elapsed   time.Duration
}

// TUIReporter implements app.ProgressReporter with a Bubble Tea
// progress bar. Run must be called (typically on its own goroutine)
// before generation starts; the program quits itself on Done.
type TUIReporter struct {
	program *tea.Program
}

// NewTUIReporter creates a TUIReporter.
func NewTUIReporter() *TUIReporter {
	model := progressModel{
		bar: progress.New(progress.WithDefaultGradient()),
	}
	return &TUIReporter{
		program: tea.NewProgram(model),
	}
}

// Run starts the Bubble Tea program and blocks until it quits.
func (r *TUIReporter) Run() error {
	_, err := r.program.Run()
	return err
}

// Start announces the total number of generation steps.
func (r *TUIReporter) Start(total int) {
	r.program.Send(startMsg{total: total})
}

// Advance records n completed steps.
func (r *TUIReporter) Advance(n int) {
	r.program.Send(advanceMsg{n: n})
}

// Done announces the final path count and quits the program.
func (r *TUIReporter) Done(generated int, elapsed time.Duration) {
	r.program.Send(doneMsg{generated: generated, elapsed: elapsed})
}

// progressModel renders generation progress.
type progressModel struct {
	bar       progress.Model
	total     int
	completed int
	generated int
	elapsed   time.Duration
	done      bool
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-4, 60)

	case startMsg:
		m.total = msg.total
		m.completed = 0

	case advanceMsg:
		m.completed += msg.n

	case doneMsg:
		m.done = true
		m.generated = msg.generated
		m.elapsed = msg.elapsed
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return tuiDoneStyle.Render(
			fmt.Sprintf("Generated %d 3-hop arbitrage paths in %s", m.generated, m.elapsed.Round(time.Millisecond)),
		) + "\n"
	}

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.completed) / float64(m.total)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		tuiTitleStyle.Render("Path Generation"),
		m.bar.ViewAs(percent),
		tuiCountStyle.Render(fmt.Sprintf("%d/%d pools scanned", m.completed, m.total)),
	) + "\n"
}
