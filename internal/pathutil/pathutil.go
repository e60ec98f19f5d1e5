// Package pathutil resolves where unwind keeps its config, database, log and
// status files.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const (
	appDir  = "unwind"
	envName = "UNWIND_ENV"
)

// Paths holds the absolute location of every file unwind writes.
type Paths struct {
	Config string
	DB     string
	Log    string
	// Status is where a running TUI mirrors the reward counters.
	Status string
}

var (
	paths *Paths
	once  sync.Once
)

// name adds the environment suffix to a file name, so "unwind.db" becomes
// "unwind_dev.db" when env is "dev".
func name(base, env string) string {
	if env == "" {
		return base
	}

	ext := filepath.Ext(base)

	return fmt.Sprintf("%s_%s%s", strings.TrimSuffix(base, ext), env, ext)
}

// Resolve computes the paths for env, creating parent directories as
// needed. Config lives under the XDG config dir, the database and status
// file under the XDG data dir, and the log under the XDG state dir.
func Resolve(env string) (Paths, error) {
	var (
		p   Paths
		err error
	)

	p.Config, err = xdg.ConfigFile(filepath.Join(appDir, name("config.yml", env)))
	if err != nil {
		return p, fmt.Errorf("resolving config path: %w", err)
	}

	p.DB, err = xdg.DataFile(filepath.Join(appDir, name("unwind.db", env)))
	if err != nil {
		return p, fmt.Errorf("resolving database path: %w", err)
	}

	p.Status = filepath.Join(filepath.Dir(p.DB), name("status.json", env))

	p.Log, err = xdg.StateFile(filepath.Join(appDir, name("unwind.log", env)))
	if err != nil {
		return p, fmt.Errorf("resolving log path: %w", err)
	}

	return p, nil
}

// Initialize must be called once at program startup. The UNWIND_ENV
// variable selects a separate set of files.
func Initialize() error {
	var initErr error

	once.Do(func() {
		var p Paths

		p, initErr = Resolve(strings.TrimSpace(os.Getenv(envName)))
		if initErr == nil {
			paths = &p
		}
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().Config
}

func DBFilePath() string {
	return Must().DB
}

func LogFilePath() string {
	return Must().Log
}

// StatusFilePath is where a running TUI mirrors the reward counters.
func StatusFilePath() string {
	return Must().Status
}
