package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"votetrack/internal/config"
	"votetrack/internal/external"
	"votetrack/internal/tracker"
)

type mapStore map[string]string

func (s mapStore) Get(_ context.Context, k string) (string, bool, error) {
	v, ok := s[k]
	return v, ok, nil
}

func (s mapStore) Set(_ context.Context, k, v string) error { s[k] = v; return nil }

func (s mapStore) Delete(_ context.Context, k string) error { delete(s, k); return nil }

type fixture struct {
	now    time.Time
	opened []string
	copied []string
	store  mapStore
}

func newFixture(t *testing.T, policy config.OpenPolicy) (*fixture, boardModel) {
	t.Helper()
	clock, err := tracker.NewClock(tracker.DefaultTimezone, tracker.DefaultResetHour)
	require.NoError(t, err)

	f := &fixture{
		now:   time.Date(2026, 10, 16, 22, 30, 0, 0, clock.Location()),
		store: mapStore{},
	}
	tr := tracker.New(f.store, tracker.WithClock(clock.WithNow(func() time.Time { return f.now })))
	tr.Load(context.Background())

	opener := external.OpenerFunc(func(url string) error { f.opened = append(f.opened, url); return nil })
	clip := external.ClipboardFunc(func(text string) error { f.copied = append(f.copied, text); return nil })
	m := newBoardModel(context.Background(), tr, opener, clip, Options{OpenPolicy: policy})
	return f, m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m boardModel, msg tea.Msg) (boardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(boardModel)
	require.True(t, ok)
	return bm, cmd
}

func TestToggleSelected(t *testing.T) {
	_, m := newFixture(t, config.OpenPolicyManual)

	m, _ = send(t, m, key("down"))
	m, _ = send(t, m, key("space"))
	assert.True(t, m.state.Progress.Has("planetmc"))
	assert.Equal(t, 1, m.state.Total)
	assert.Contains(t, m.View(), "1/12")

	m, _ = send(t, m, key("x"))
	assert.False(t, m.state.Progress.Has("planetmc"))
	assert.Equal(t, 0, m.state.Total)
}

func TestOpenRespectsPolicy(t *testing.T) {
	for _, tc := range []struct {
		policy config.OpenPolicy
		marked bool
	}{
		{config.OpenPolicyManual, false},
		{config.OpenPolicyMark, true},
	} {
		t.Run(string(tc.policy), func(t *testing.T) {
			f, m := newFixture(t, tc.policy)

			m, cmd := send(t, m, key("enter"))
			require.NotNil(t, cmd)
			m, _ = send(t, m, cmd())

			require.Len(t, f.opened, 1)
			assert.Equal(t, "https://findmcserver.com/server/badwolfmc", f.opened[0])
			assert.Equal(t, tc.marked, m.state.Progress.Has("findmc"))
		})
	}
}

func TestOpenFailureDoesNotMark(t *testing.T) {
	_, m := newFixture(t, config.OpenPolicyMark)
	m, _ = send(t, m, openedMsg{id: "findmc", err: external.ActionError{Action: "open", Err: errors.New("no browser")}})
	assert.False(t, m.state.Progress.Has("findmc"))
	assert.Contains(t, m.lastLog, "no browser")
}

func TestCopyFlashClears(t *testing.T) {
	f, m := newFixture(t, config.OpenPolicyManual)

	m, cmd := send(t, m, key("c"))
	assert.Nil(t, cmd, "copy without a name is a no-op")

	m, _ = send(t, m, key("n"))
	for _, r := range "Steve" {
		m, _ = send(t, m, key(string(r)))
	}
	m, _ = send(t, m, key("enter"))
	require.Equal(t, "Steve", m.state.Name)
	assert.Equal(t, "Steve", f.store[tracker.KeyName])

	m, cmd = send(t, m, key("c"))
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	assert.Equal(t, []string{"Steve"}, f.copied)
	assert.True(t, m.copied)
	assert.Contains(t, m.View(), "Copied!")

	// A stale clear from an earlier copy is ignored.
	m, _ = send(t, m, clearCopiedMsg{gen: m.copyGen - 1})
	assert.True(t, m.copied)
	m, _ = send(t, m, clearCopiedMsg{gen: m.copyGen})
	assert.False(t, m.copied)
}

func TestCopyFailureIsTransient(t *testing.T) {
	_, m := newFixture(t, config.OpenPolicyManual)
	m, _ = send(t, m, copiedMsg{err: external.ActionError{Action: "copy", Err: errors.New("denied")}})
	assert.False(t, m.copied)
	assert.Equal(t, "copy failed: denied", m.lastLog)
}

func TestEditNameCancel(t *testing.T) {
	f, m := newFixture(t, config.OpenPolicyManual)
	m, _ = send(t, m, key("n"))
	m, _ = send(t, m, key("A"))
	m, _ = send(t, m, key("esc"))
	assert.False(t, m.editing)
	assert.Equal(t, "", m.state.Name)
	_, ok := f.store[tracker.KeyName]
	assert.False(t, ok)
}

func TestTickUpdatesCountdownAndRollsOver(t *testing.T) {
	f, m := newFixture(t, config.OpenPolicyManual)
	assert.Equal(t, "2 hours and 30 minutes", m.countdown)

	m, _ = send(t, m, key("space"))
	require.Equal(t, 1, m.state.Progress.Count())

	f.now = f.now.Add(2*time.Hour + 29*time.Minute)
	m, cmd := send(t, m, tickMsg(f.now))
	assert.NotNil(t, cmd, "tick must reschedule itself")
	assert.Equal(t, "1 minute", m.countdown)
	assert.Equal(t, 1, m.state.Progress.Count())

	f.now = f.now.Add(time.Minute)
	m, _ = send(t, m, tickMsg(f.now))
	assert.Equal(t, 0, m.state.Progress.Count())
	assert.Equal(t, 1, m.state.Total)
	assert.Equal(t, "24 hours and 0 minutes", m.countdown)
	assert.Contains(t, m.lastLog, "New voting day")
}

func TestAllDoneBanner(t *testing.T) {
	_, m := newFixture(t, config.OpenPolicyManual)
	for i := 0; i < 12; i++ {
		m, _ = send(t, m, key("space"))
		m, _ = send(t, m, key("down"))
	}
	assert.Equal(t, 12, m.state.Progress.Count())
	assert.Contains(t, m.View(), "All votes completed")
}
