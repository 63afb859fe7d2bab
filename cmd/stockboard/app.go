package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"stockboard/internal/core/version"
	"stockboard/internal/platform/blob"
	"stockboard/internal/platform/config"
	"stockboard/internal/platform/logger"
	"stockboard/internal/services/api/uploads/domain"
	uploadsrepo "stockboard/internal/services/api/uploads/repo"
	uploadssvc "stockboard/internal/services/api/uploads/service"
)

// app is the state shared by every command of one invocation
type app struct {
	in          io.Reader
	out         io.Writer
	interactive func() bool
	conf        config.Conf
	boot        func(ctx context.Context, root config.Conf, s blob.Settings) (blob.Store, func() error, error)

	// global flags
	yes        bool
	asJSON     bool
	driver     string
	fsRoot     string
	sqlitePath string

	svc   *uploadssvc.Svc
	close func() error
}

func newApp() *app {
	return &app{
		in:  os.Stdin,
		out: os.Stdout,
		interactive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		conf: config.New(),
		boot: func(ctx context.Context, root config.Conf, s blob.Settings) (blob.Store, func() error, error) {
			return blob.Boot(ctx, root, s, version.Service+"-cli")
		},
	}
}

// settings resolves STOCKBOARD_BLOB_ and applies the flag overrides
func (a *app) settings() blob.Settings {
	s := blob.SettingsFrom(a.conf.Prefix("STOCKBOARD_BLOB_"))
	if a.driver != "" {
		s.Driver = blob.Driver(strings.ToLower(a.driver))
	}
	if a.fsRoot != "" {
		s.FSRoot = a.fsRoot
	}
	if a.sqlitePath != "" {
		s.SQLitePath = a.sqlitePath
	}
	return s
}

// open brings up the blob store and loads the upload list
func (a *app) open(ctx context.Context) error {
	s := a.settings()
	store, closeFn, err := a.boot(ctx, a.conf, s)
	if err != nil {
		return err
	}
	a.close = closeFn
	a.svc = uploadssvc.New(
		uploadsrepo.NewBlob(store, s.Key),
		uploadssvc.WithLogger(logger.Named("cli")),
	)
	a.svc.Load(ctx)
	return nil
}

func (a *app) shutdown() error {
	if a.close == nil {
		return nil
	}
	err := a.close()
	a.close = nil
	return err
}

// confirmer prompts on a terminal; --yes or a headless stdin proceeds
func (a *app) confirmer() domain.Confirmer {
	if a.yes || !a.interactive() {
		return domain.Proceed
	}
	return domain.ConfirmFunc(func(message string) bool {
		fmt.Fprintf(a.out, "%s [y/N] ", message)
		line, err := bufio.NewReader(a.in).ReadString('\n')
		if err != nil && line == "" {
			// nothing to read from, treat like a headless run
			return true
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes", "s", "sim":
			return true
		}
		return false
	})
}
