package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"examdeck/internal/exams"
	"examdeck/internal/scheduler"
	"examdeck/internal/storage"
	"examdeck/internal/update"
)

const deliveredKeyMaxAge = 30 * 24 * time.Hour

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "examdeck failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	ctx := context.Background()

	schedule := exams.Fixtures()

	dbPath, err := resolveDBPath(cfg.DBPath)
	if err != nil {
		return err
	}
	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open store at %s: %w", dbPath, err)
	}
	defer store.Close()

	settings := storage.LoadSettings(ctx, store)

	if pruned, err := storage.PruneDeliveredKeys(ctx, store, schedule, time.Now(), deliveredKeyMaxAge); err != nil {
		log.Printf("examdeck: prune delivered keys: %v", err)
	} else if pruned > 0 {
		log.Printf("examdeck: pruned %d stale delivery keys", pruned)
	}

	sched := scheduler.New(schedule, settings, storage.NewDeliveryLog(store), cfg.SchedulerBuffer)
	sched.SetInterval(time.Duration(cfg.TickSeconds) * time.Second)
	defer sched.Stop()

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		desktop := update.ExecDesktopNotifier{}
		if desktop.Available() {
			notifier = desktop
		} else {
			log.Printf("examdeck: desktop notifications requested but no sink found; using in-app log")
		}
	}

	m := update.NewModelWithRuntime(schedule, settings, sched, store, notifier, cfg)
	if settings.Enabled && notifier.Available() {
		sched.Start()
	}

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// resolveDBPath places the default database under the user config
// directory; an explicit EXAMDECK_DB path is used verbatim.
func resolveDBPath(configured string) (string, error) {
	if configured != update.DefaultRuntimeConfig().DBPath {
		return configured, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return configured, nil
	}
	dir := filepath.Join(base, "examdeck")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return filepath.Join(dir, configured), nil
}
