// cmd/console/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"commandkit/internal/console"
	"commandkit/internal/console/commands"
	"commandkit/pkg/command"
	"commandkit/pkg/dispatch"
)

func main() {
	cfg, err := console.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := console.NewLogger(cfg.LogPath, cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := os.MkdirAll(filepath.Dir(cfg.DataPath), 0755); err != nil {
		log.Fatal(err)
	}
	store, err := console.NewStore(cfg.DataPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	host := console.NewHost(store, logger)
	sched := console.NewScheduler(logger)

	opts := []dispatch.Option{dispatch.WithLogger(logger)}
	if cfg.FloodRPS > 0 {
		opts = append(opts, dispatch.WithFloodLimit(cfg.FloodRPS, cfg.FloodBurst))
	}
	engine := dispatch.New(host, sched, opts...)

	register(engine, store, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryPath,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		engine.Cooldowns().RunCleaner(ctx, time.Minute)
		return nil
	})
	g.Go(func() error {
		defer cancel()
		return host.Run(rl)
	})

	if err := g.Wait(); err != nil {
		logger.Error("console exited with error", zap.Error(err))
	}
	sched.Wait()
	logger.Info("console exited cleanly")
}

func register(engine *dispatch.Engine, store *console.Store, logger *zap.Logger) {
	readHistory := func(user string) ([]commands.HistoryEntry, error) {
		records, err := store.History(user)
		if err != nil {
			return nil, err
		}
		entries := make([]commands.HistoryEntry, 0, len(records))
		for _, r := range records {
			entries = append(entries, commands.HistoryEntry{
				Command:  r.Command,
				Line:     r.Line,
				Datetime: r.Datetime.Format("2006-01-02 15:04:05"),
			})
		}
		return entries, nil
	}

	handlers := []command.Handler{
		commands.Shop{},
		commands.Admin{Log: logger},
		commands.Perm{Store: store},
		commands.Heal{},
		commands.Scan{},
		commands.Roll{},
		commands.History{Read: readHistory},
	}
	for _, h := range handlers {
		if err := engine.Register(h); err != nil {
			log.Fatalf("register %T: %v", h, err)
		}
	}
}
