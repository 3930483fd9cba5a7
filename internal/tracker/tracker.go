package tracker

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"
)

// Store is the durable key-value capability the tracker persists through.
// Get reports ok=false when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// BatchStore is implemented by stores that can commit several keys at once.
// When available, progress and total are written together.
type BatchStore interface {
	SetMany(ctx context.Context, pairs map[string]string) error
}

type Action string

const (
	ActionCompleted   Action = "completed"
	ActionUncompleted Action = "uncompleted"
)

type JournalEntry struct {
	TargetID string
	Action   Action
	Day      Day
	At       time.Time
}

// Journal receives one entry per state transition. Optional.
type Journal interface {
	Record(ctx context.Context, e JournalEntry) error
}

// Progress is the set of targets completed on Day.
type Progress struct {
	Day       Day
	Completed map[string]bool
}

func (p Progress) Count() int { return len(p.Completed) }

func (p Progress) Has(id string) bool { return p.Completed[id] }

// IDs returns the completed ids sorted.
func (p Progress) IDs() []string {
	ids := make([]string, 0, len(p.Completed))
	for id := range p.Completed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (p Progress) clone() Progress {
	out := Progress{Day: p.Day, Completed: make(map[string]bool, len(p.Completed))}
	for id, v := range p.Completed {
		out.Completed[id] = v
	}
	return out
}

// State is everything the tracker persists.
type State struct {
	Name     string
	Progress Progress
	Total    int
}

type Summary struct {
	Day       Day
	Completed int
	Targets   int
	Total     int
	AllDone   bool
}

func (s Summary) Percent() float64 {
	if s.Targets == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Targets) * 100
}

type Option func(*Tracker)

func WithClock(c Clock) Option { return func(t *Tracker) { t.clock = c } }

func WithLogger(l *log.Logger) Option { return func(t *Tracker) { t.logger = l } }

func WithJournal(j Journal) Option { return func(t *Tracker) { t.journal = j } }

// Tracker owns the daily progress state machine. It has a single mutator and
// is not safe for concurrent use.
type Tracker struct {
	store   Store
	journal Journal
	clock   Clock
	catalog *Catalog
	logger  *log.Logger

	state  State
	loaded bool
}

func New(store Store, opts ...Option) *Tracker {
	t := &Tracker{store: store}
	for _, opt := range opts {
		opt(t)
	}
	if t.clock.loc == nil {
		t.clock = defaultClock()
	}
	if t.catalog == nil {
		t.catalog = DefaultCatalog()
	}
	if t.logger == nil {
		t.logger = log.New(io.Discard)
	}
	return t
}

func (t *Tracker) Catalog() *Catalog { return t.catalog }

func (t *Tracker) Clock() Clock { return t.clock }

// Load rehydrates state from the store. Missing or malformed values fall back
// to defaults, and a record from an earlier voting day is discarded while the
// lifetime total is kept.
func (t *Tracker) Load(ctx context.Context) State {
	today := t.clock.CurrentResetDay()
	st := State{Progress: emptyProgress(today)}

	if name, ok := t.read(ctx, KeyName); ok {
		st.Name = name
	}

	if raw, ok := t.read(ctx, KeyTotal); ok {
		n, err := decodeTotal(raw)
		if err != nil {
			t.logger.Warn("ignoring stored total", "err", DecodeError{Key: KeyTotal, Err: err})
		} else {
			st.Total = n
		}
	}

	if raw, ok := t.read(ctx, KeyProgress); ok {
		p, err := decodeProgress(raw)
		switch {
		case err != nil:
			t.logger.Warn("ignoring stored progress", "err", DecodeError{Key: KeyProgress, Err: err})
		case p.Day != today:
			t.logger.Debug("new voting day, clearing completions", "stored", p.Day, "today", today)
			if err := t.store.Delete(ctx, KeyProgress); err != nil {
				t.logger.Warn("delete stale progress", "err", err)
			}
		default:
			st.Progress = t.sanitize(p)
		}
	}

	t.state = st
	t.loaded = true
	t.logger.Debug("state loaded", "day", today, "completed", st.Progress.IDs(), "total", st.Total)
	return t.State()
}

// Refresh applies the daily rollover to in-memory state if the voting day
// advanced since the state was loaded. It reports whether a rollover happened.
func (t *Tracker) Refresh(ctx context.Context) (State, bool) {
	if !t.loaded {
		t.Load(ctx)
	}
	today := t.clock.CurrentResetDay()
	if t.state.Progress.Day == today {
		return t.State(), false
	}
	t.logger.Debug("voting day rolled over", "from", t.state.Progress.Day, "to", today)
	t.state.Progress = emptyProgress(today)
	t.saveProgress(ctx)
	return t.State(), true
}

// Toggle flips the completion of id and adjusts the lifetime total.
func (t *Tracker) Toggle(ctx context.Context, id string) (State, error) {
	if !t.catalog.Has(id) {
		return t.State(), InvalidTargetError{ID: id}
	}
	t.Refresh(ctx)

	action := ActionCompleted
	if t.state.Progress.Completed[id] {
		delete(t.state.Progress.Completed, id)
		if t.state.Total > 0 {
			t.state.Total--
		}
		action = ActionUncompleted
	} else {
		t.state.Progress.Completed[id] = true
		t.state.Total++
	}

	t.saveCounts(ctx)
	t.record(ctx, id, action)
	return t.State(), nil
}

// RecordExternalCompletion marks id completed after the user reached the site
// through a path that implies a vote. Already completed targets are left alone.
func (t *Tracker) RecordExternalCompletion(ctx context.Context, id string) (State, error) {
	if !t.catalog.Has(id) {
		return t.State(), InvalidTargetError{ID: id}
	}
	t.Refresh(ctx)

	if t.state.Progress.Completed[id] {
		return t.State(), nil
	}
	t.state.Progress.Completed[id] = true
	t.state.Total++

	t.saveCounts(ctx)
	t.record(ctx, id, ActionCompleted)
	return t.State(), nil
}

// SetName stores the display name as given.
func (t *Tracker) SetName(ctx context.Context, name string) (State, error) {
	if name == "" {
		return t.State(), ErrEmptyName
	}
	if !t.loaded {
		t.Load(ctx)
	}
	if name == t.state.Name {
		return t.State(), nil
	}
	t.state.Name = name
	t.saveName(ctx)
	return t.State(), nil
}

// Save writes all three values. Failures are logged, not returned.
func (t *Tracker) Save(ctx context.Context) {
	if !t.loaded {
		t.Load(ctx)
	}
	t.saveName(ctx)
	t.saveCounts(ctx)
}

// State returns a copy of the current state.
func (t *Tracker) State() State {
	st := t.state
	st.Progress = t.state.Progress.clone()
	return st
}

func (t *Tracker) IsCompleted(id string) bool {
	return t.state.Progress.Completed[id]
}

func (t *Tracker) Summary() Summary {
	n := t.state.Progress.Count()
	return Summary{
		Day:       t.state.Progress.Day,
		Completed: n,
		Targets:   t.catalog.Len(),
		Total:     t.state.Total,
		AllDone:   n == t.catalog.Len(),
	}
}

func (t *Tracker) read(ctx context.Context, key string) (string, bool) {
	v, ok, err := t.store.Get(ctx, key)
	if err != nil {
		t.logger.Warn("read failed, using default", "key", key, "err", err)
		return "", false
	}
	return v, ok
}

func (t *Tracker) write(ctx context.Context, key, value string) {
	if err := t.store.Set(ctx, key, value); err != nil {
		t.logger.Warn("write failed", "key", key, "err", err)
	}
}

func (t *Tracker) saveName(ctx context.Context) {
	// An empty name was never chosen; leave storage untouched.
	if t.state.Name == "" {
		return
	}
	t.write(ctx, KeyName, t.state.Name)
}

func (t *Tracker) saveProgress(ctx context.Context) {
	raw, err := encodeProgress(t.state.Progress)
	if err != nil {
		t.logger.Warn("encode progress", "err", err)
		return
	}
	t.write(ctx, KeyProgress, raw)
}

func (t *Tracker) saveTotal(ctx context.Context) {
	t.write(ctx, KeyTotal, encodeTotal(t.state.Total))
}

// saveCounts persists progress and total, in one batch when the store allows.
func (t *Tracker) saveCounts(ctx context.Context) {
	batch, ok := t.store.(BatchStore)
	if !ok {
		t.saveProgress(ctx)
		t.saveTotal(ctx)
		return
	}
	raw, err := encodeProgress(t.state.Progress)
	if err != nil {
		t.logger.Warn("encode progress", "err", err)
		t.saveTotal(ctx)
		return
	}
	pairs := map[string]string{
		KeyProgress: raw,
		KeyTotal:    encodeTotal(t.state.Total),
	}
	if err := batch.SetMany(ctx, pairs); err != nil {
		t.logger.Warn("write failed", "keys", []string{KeyProgress, KeyTotal}, "err", err)
	}
}

func (t *Tracker) record(ctx context.Context, id string, action Action) {
	if t.journal == nil {
		return
	}
	e := JournalEntry{TargetID: id, Action: action, Day: t.state.Progress.Day, At: t.clock.Now().UTC()}
	if err := t.journal.Record(ctx, e); err != nil {
		t.logger.Warn("journal write failed", "target", id, "err", err)
	}
}

// sanitize drops ids that are not in the catalog.
func (t *Tracker) sanitize(p Progress) Progress {
	for id := range p.Completed {
		if !t.catalog.Has(id) {
			t.logger.Warn("dropping unknown target from stored progress", "target", id)
			delete(p.Completed, id)
		}
	}
	return p
}

func emptyProgress(day Day) Progress {
	return Progress{Day: day, Completed: map[string]bool{}}
}
