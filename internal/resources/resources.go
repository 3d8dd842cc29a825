// Package resources fetches and caches the named data files the
// dictionary oracle trains from. Each resource is downloaded at most
// once and reused from the data directory on later runs.
package resources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"log/slog"

	"github.com/Alfex4936/spellscan/internal/net"
)

// ErrMissing marks a required resource that could not be made available.
var ErrMissing = errors.New("resources: required resource unavailable")

// Spec names one fetchable resource. Name doubles as the cached file
// name under the data directory.
type Spec struct {
	Name     string
	URL      string
	Required bool
}

// Defaults lists the resources the default oracle trains from. The
// frequency corpus is mandatory; the supplement only widens the
// vocabulary.
var Defaults = []Spec{
	{Name: "words-en.txt", URL: "https://norvig.com/big.txt", Required: true},
	{Name: "words-extra.txt", URL: "https://raw.githubusercontent.com/dwyl/english-words/master/words_alpha.txt", Required: false},
}

// Manager ensures resources exist locally under one data directory.
type Manager struct {
	dir    string
	logger *slog.Logger
}

func NewManager(dir string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{dir: dir, logger: logger}
}

// Ensure makes every spec available locally, downloading absent files.
// A required failure aborts; an optional failure logs a warning and
// continues.
func (m *Manager) Ensure(ctx context.Context, specs []Spec) error {
	for _, s := range specs {
		if _, err := os.Stat(m.Path(s.Name)); err == nil {
			continue
		}
		m.logger.Info("fetching resource", "name", s.Name, "url", s.URL)
		if err := m.fetch(ctx, s); err != nil {
			if s.Required {
				return fmt.Errorf("%w: %s: %v", ErrMissing, s.Name, err)
			}
			m.logger.Warn("optional resource unavailable, continuing without it",
				"name", s.Name, "err", err)
		}
	}
	return nil
}

// Path returns where the named resource lives (or would live) on disk.
func (m *Manager) Path(name string) string { return filepath.Join(m.dir, name) }

// Open returns the cached file for name. Optional resources that were
// never fetched yield an error the caller may ignore.
func (m *Manager) Open(name string) (*os.File, error) { return os.Open(m.Path(name)) }

func (m *Manager) fetch(ctx context.Context, s Spec) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return err
	}

	req, err := net.NewGET(ctx, s.URL)
	if err != nil {
		return err
	}
	resp, err := net.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", s.URL, resp.Status)
	}

	// Write to a .part file first so a cut download never poses as a
	// complete resource.
	tmp := m.Path(s.Name) + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, m.Path(s.Name))
}
