package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"contour/internal/app"
	"contour/internal/cache"
	"contour/internal/commands"
	"contour/internal/engine"
	"contour/internal/intent"
	"contour/internal/keyboard"
	"contour/internal/kvstore"
	"contour/internal/logging"
	"contour/internal/providers"
	"contour/internal/ui"
)

var version = "dev"

func main() {
	themeFlag := flag.String("theme", "charm", "Theme to use (charm, dracula)")
	offlineFlag := flag.Bool("offline", false, "Disable network providers (detection still works)")
	stateDirFlag := flag.String("state-dir", "", "Directory for cache and recents (default: user config dir)")
	logLevelFlag := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFileFlag := flag.String("log-file", "", "Log file path (default: <state-dir>/contour.log)")
	flag.Parse()

	stateDir, err := resolveStateDir(*stateDirFlag)
	if err != nil {
		fmt.Printf("Error resolving state directory: %v\n", err)
		os.Exit(1)
	}

	logFile := *logFileFlag
	if logFile == "" {
		logFile = filepath.Join(stateDir, "contour.log")
	}
	if err := logging.Init(logging.Config{
		Level:    logging.ParseLevel(*logLevelFlag),
		Format:   logging.FormatText,
		FilePath: logFile,
	}); err != nil {
		fmt.Printf("Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	logging.Info("starting contour", "version", version, "state_dir", stateDir)

	store, err := kvstore.NewFileStore(stateDir)
	if err != nil {
		fmt.Printf("Error opening state directory: %v\n", err)
		os.Exit(1)
	}

	set := providers.NewHTTPSet()
	if *offlineFlag {
		set = providers.Offline()
		logging.Info("running offline, resolution disabled")
	}

	notifyCh := make(chan struct{}, 8)
	notify := func() {
		select {
		case notifyCh <- struct{}{}:
		default:
		}
	}

	clipboard := providers.SystemClipboard{}
	eng := engine.New(engine.Config{
		Resolver: &intent.Resolver{
			Providers: set,
			Cache:     cache.New(store),
		},
		Registry:  commands.NewRegistry(store),
		Clipboard: clipboard,
		Notifier:  providers.TerminalBell{},
		Scheduler: engine.TickScheduler{},
		Notify:    notify,
	})

	model := app.New(app.Config{
		Engine:    eng,
		Theme:     ui.GetTheme(*themeFlag),
		Keys:      keyboard.Default(),
		Clipboard: clipboard,
		NotifyCh:  notifyCh,
		Version:   version,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// resolveStateDir picks the state directory, creating it if needed.
func resolveStateDir(override string) (string, error) {
	dir := override
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, "contour")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
