package root

import (
	"context"
	"database/sql"
	"os"

	"github.com/charmbracelet/log"

	"votetrack/internal/config"
	"votetrack/internal/external"
	"votetrack/internal/logging"
	"votetrack/internal/storage"
	"votetrack/internal/tracker"
)

// app bundles everything a command needs.
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	db      *sql.DB
	kv      *storage.KVRepo
	tracker *tracker.Tracker
	votes   *storage.VoteLogRepo
	opener  external.Opener
	clip    external.Clipboard
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return nil, err
	}
	if flags.dbPath != "" {
		cfg.DBPath = flags.dbPath
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
		cfg.Normalize()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("opening database", "path", path)
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	clock, err := tracker.NewClock(cfg.Timezone, cfg.ResetHour)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	kv := storage.NewKVRepo(db)
	votes := storage.NewVoteLogRepo(db)
	tr := tracker.New(kv,
		tracker.WithClock(clock),
		tracker.WithLogger(logger),
		tracker.WithJournal(voteJournal{repo: votes}),
	)
	tr.Load(ctx)

	return &app{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		kv:      kv,
		tracker: tr,
		votes:   votes,
		opener:  external.BrowserOpener{},
		clip:    external.SystemClipboard{},
	}, cleanup, nil
}

var _ tracker.BatchStore = (*storage.KVRepo)(nil)

// voteJournal stores tracker transitions in the vote_log table.
type voteJournal struct {
	repo *storage.VoteLogRepo
}

func (j voteJournal) Record(ctx context.Context, e tracker.JournalEntry) error {
	_, err := j.repo.Insert(ctx, storage.VoteEvent{
		TargetID: e.TargetID,
		Action:   string(e.Action),
		Day:      string(e.Day),
		At:       e.At,
	})
	return err
}
