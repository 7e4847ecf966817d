package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/capsule/internal/config"
	"github.com/llehouerou/capsule/internal/errmsg"
	"github.com/llehouerou/capsule/internal/feedback"
	"github.com/llehouerou/capsule/internal/icons"
	"github.com/llehouerou/capsule/internal/notify"
	"github.com/llehouerou/capsule/internal/stderr"
)

const (
	debugEnv        = "CAPSULE_DEBUG"
	defaultLogFile  = "capsule-debug.log"
	notifyTimeoutMs = 2000
)

// setupLogging sends the standard logger to a file when CAPSULE_DEBUG is set
// ("1" picks the default file name) and discards it otherwise, since the TUI
// owns the terminal.
func setupLogging() (io.Closer, error) {
	path := os.Getenv(debugEnv)
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	if path == "1" {
		path = defaultLogFile
	}
	return tea.LogToFile(path, "capsule")
}

func run() error {
	logFile, err := setupLogging()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpLogOpen, err)
	}
	defer logFile.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}
	icons.Init(cfg.Icons)

	// the tone backend's audio library writes to fd 2 on its own
	var capture *stderr.Capture
	if cfg.Feedback == feedback.BackendTone {
		capture, err = stderr.Start(100)
		if err != nil {
			log.Print(errmsg.Format(errmsg.OpCapture, err))
		} else {
			defer capture.Stop()
		}
	}

	var announcer *notify.Announcer
	if n, err := notify.New(); err != nil {
		log.Print(errmsg.Format(errmsg.OpNotify, err))
	} else {
		announcer = notify.NewAnnouncer(n, notifyTimeoutMs)
	}

	zones := zone.New()
	defer zones.Close()

	m := newModel(deps{
		cfg:       cfg,
		feedback:  feedback.FromName(cfg.Feedback),
		zones:     zones,
		announcer: announcer,
		capture:   capture,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	stopWatch, err := config.Watch(func(cfg config.NavigationConfig, err error) {
		p.Send(configMsg{cfg: cfg, err: err})
	})
	if err != nil {
		log.Print(errmsg.Format(errmsg.OpConfigWatch, err))
	} else {
		defer stopWatch()
	}

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Println(errmsg.Format(errmsg.OpRun, err))
		os.Exit(1)
	}
}
