package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/studyplan/internal/app"
	"github.com/abhisek/studyplan/internal/config"
	"github.com/abhisek/studyplan/internal/logger"
	"github.com/abhisek/studyplan/internal/scheduler"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/sessions"
	"github.com/abhisek/studyplan/internal/store"
)

// deps holds what every command needs once config is loaded.
type deps struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *store.Store
	sessions *sessions.Service
}

// openDeps loads config, builds the logger, and opens the store.
func openDeps(cmd *cobra.Command) (*deps, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", zap.String("path", dbPath), zap.String("command", cmd.CommandPath()))

	return &deps{
		cfg:      cfg,
		logger:   log,
		store:    st,
		sessions: sessions.NewService(st.SessionRepo(), log),
	}, nil
}

func (d *deps) Close() {
	d.store.Close()
	_ = d.logger.Sync()
}

// runApp opens dependencies and launches the TUI. initial, if non-nil,
// builds a screen shown above the home menu.
func runApp(cmd *cobra.Command, initial func(d *deps) screen.Screen) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	opts := app.Options{
		Sessions: d.sessions,
		Timer:    d.cfg.Timer.Pomodoro(),
		Logger:   d.logger,
		Now:      time.Now,
	}

	if f := cmd.Flags().Lookup("plan"); f != nil && f.Value.String() != "" {
		res, err := generateFromFile(d, f.Value.String())
		if err != nil {
			return err
		}
		opts.Plan = res
	}
	if initial != nil {
		opts.Initial = initial(d)
	}

	return app.Run(opts)
}

func generate(d *deps, req scheduler.Request) (*scheduler.Result, error) {
	return scheduler.NewPlanner(d.logger, scheduler.Options{}).Generate(req)
}
