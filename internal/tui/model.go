package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"votetrack/internal/config"
	"votetrack/internal/external"
	"votetrack/internal/tracker"
	"votetrack/internal/ui"
)

type Options struct {
	OpenPolicy      config.OpenPolicy
	RefreshInterval time.Duration
	CopyFlash       time.Duration
}

// boardModel is the only mutator of the tracker while the board runs: every
// tracker call happens inside Update.
type boardModel struct {
	ctx    context.Context
	tr     *tracker.Tracker
	opener external.Opener
	clip   external.Clipboard
	opts   Options

	width  int
	height int

	state     tracker.State
	countdown string
	selected  int

	copied  bool
	copyGen int

	editing bool
	input   []rune

	lastLog string
}

type tickMsg time.Time

type openedMsg struct {
	id  string
	err error
}

type copiedMsg struct {
	err error
}

type clearCopiedMsg struct {
	gen int
}

func newBoardModel(ctx context.Context, tr *tracker.Tracker, opener external.Opener, clip external.Clipboard, opts Options) boardModel {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = time.Minute
	}
	if opts.CopyFlash <= 0 {
		opts.CopyFlash = 2 * time.Second
	}
	m := boardModel{
		ctx:     ctx,
		tr:      tr,
		opener:  opener,
		clip:    clip,
		opts:    opts,
		state:   tr.State(),
		lastLog: "Loaded.",
	}
	m.countdown = m.computeCountdown()
	return m
}

func (m boardModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m boardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.opts.RefreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m boardModel) openCmd(t tracker.Target) tea.Cmd {
	return func() tea.Msg {
		return openedMsg{id: t.ID, err: m.opener.Open(t.URL)}
	}
}

func (m boardModel) copyCmd(name string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: m.clip.Copy(name)}
	}
}

func (m boardModel) computeCountdown() string {
	c := m.tr.Clock()
	return tracker.FormatCountdown(c.TimeUntilNextReset(c.Now()))
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		st, rolled := m.tr.Refresh(m.ctx)
		m.state = st
		m.countdown = m.computeCountdown()
		if rolled {
			m.lastLog = "New voting day: checklist cleared."
		}
		return m, m.tickCmd()
	case openedMsg:
		if msg.err != nil {
			m.lastLog = msg.err.Error()
			return m, nil
		}
		t, _ := m.tr.Catalog().Lookup(msg.id)
		if m.opts.OpenPolicy != config.OpenPolicyMark {
			m.lastLog = fmt.Sprintf("Opened %s. Tick it off once you have voted.", t.Name)
			return m, nil
		}
		st, err := m.tr.RecordExternalCompletion(m.ctx, msg.id)
		if err != nil {
			m.lastLog = err.Error()
			return m, nil
		}
		m.state = st
		m.lastLog = fmt.Sprintf("Opened %s and marked it voted.", t.Name)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.lastLog = msg.err.Error()
			return m, nil
		}
		m.copied = true
		m.copyGen++
		gen := m.copyGen
		return m, tea.Tick(m.opts.CopyFlash, func(time.Time) tea.Msg { return clearCopiedMsg{gen: gen} })
	case clearCopiedMsg:
		// A newer copy restarted the flash.
		if msg.gen == m.copyGen {
			m.copied = false
		}
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m boardModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	targets := m.tr.Catalog()
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < targets.Len()-1 {
			m.selected++
		}
	case " ", "x":
		t, ok := targets.At(m.selected)
		if !ok {
			return m, nil
		}
		st, err := m.tr.Toggle(m.ctx, t.ID)
		if err != nil {
			m.lastLog = err.Error()
			return m, nil
		}
		m.state = st
		if st.Progress.Has(t.ID) {
			m.lastLog = fmt.Sprintf("Voted on %s.", t.Name)
		} else {
			m.lastLog = fmt.Sprintf("Unchecked %s.", t.Name)
		}
	case "enter", "o":
		t, ok := targets.At(m.selected)
		if !ok {
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Opening %s…", t.Name)
		return m, m.openCmd(t)
	case "c", "y":
		if m.state.Name == "" {
			m.lastLog = "Set your username first (n)."
			return m, nil
		}
		return m, m.copyCmd(m.state.Name)
	case "n":
		m.editing = true
		m.input = []rune(m.state.Name)
		m.lastLog = "Editing username: enter to save, esc to cancel."
	case "r":
		st, rolled := m.tr.Refresh(m.ctx)
		m.state = st
		m.countdown = m.computeCountdown()
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		if rolled {
			m.lastLog = "New voting day: checklist cleared."
		}
	}
	return m, nil
}

func (m boardModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.editing = false
		m.input = nil
		m.lastLog = "Username unchanged."
	case tea.KeyEnter:
		name := string(m.input)
		m.editing = false
		m.input = nil
		st, err := m.tr.SetName(m.ctx, name)
		if err != nil {
			m.lastLog = err.Error()
			return m, nil
		}
		m.state = st
		m.lastLog = "Username saved."
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
	}
	return m, nil
}

func (m boardModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	if sum := m.tr.Summary(); sum.AllDone {
		b.WriteString(ui.Banner.Render(ui.IconTrophy + " All votes completed! Your rewards are on the way!"))
		b.WriteString("\n")
	}
	b.WriteString(ui.Muted.Render(fmt.Sprintf("%s You can vote again in about %s", ui.IconClock, m.countdown)))
	b.WriteString("\n\n")
	b.WriteString(m.renderSites())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	sum := m.tr.Summary()
	name := m.state.Name
	if m.editing {
		name = string(m.input) + "▌"
	} else if name == "" {
		name = ui.Muted.Render("(no username)")
	}
	copyHint := ""
	if m.copied {
		copyHint = " " + ui.Good.Render("Copied!")
	}
	return fmt.Sprintf("%s | %s %s%s | %d/%d %s | Total Votes %s",
		ui.Heading(ui.IconVote, "BadWolfMC Votes"),
		ui.IconUser, name, copyHint,
		sum.Completed, sum.Targets, ui.ProgressBar(sum.Completed, sum.Targets, 12),
		ui.Gold.Render(ui.Thousands(sum.Total)),
	)
}

func (m boardModel) renderSites() string {
	var out []string
	for i, t := range m.tr.Catalog().Targets() {
		done := m.state.Progress.Has(t.ID)
		cursor := "  "
		name := t.Name
		if i == m.selected {
			cursor = "> "
			name = ui.SelectedRow.Render(name)
		}
		out = append(out, fmt.Sprintf("%s%s %-24s %s", cursor, ui.Check(done), name, ui.VoteStatus(done)))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	keys := "↑/↓ move · space toggle · enter open · c copy name · n edit name · r refresh · q quit"
	return ui.Muted.Render(keys) + "\n" + m.lastLog
}
