package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mudler/xlog"
	"github.com/robfig/cron/v3"
)

// Snapshot names sort lexicographically in chronological order.
const snapshotTimeFormat = "20060102T150405.000000000"

// Snapshotter periodically copies the store file into a snapshot directory
// and keeps only the most recent copies. The store rewrites its file on
// every mutation, so a plain file copy is always a consistent snapshot.
type Snapshotter struct {
	source   string
	dir      string
	keep     int
	schedule cron.Schedule

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New parses the cron schedule (six fields, seconds first) and prepares the
// snapshot directory.
func New(source, dir, scheduleExpr string, keep int) (*Snapshotter, error) {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(scheduleExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot schedule: %w", err)
	}
	if keep <= 0 {
		keep = 10
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &Snapshotter{
		source:   source,
		dir:      dir,
		keep:     keep,
		schedule: schedule,
	}, nil
}

// Start begins the snapshot loop.
func (s *Snapshotter) Start() {
	if s.ctx != nil {
		xlog.Warn("Snapshotter already started")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.ctx = ctx
	s.cancel = cancel
	s.wg.Add(1)
	go s.run()
	xlog.Info("Snapshot scheduler started", "dir", s.dir, "keep", s.keep)
}

// Stop cancels the loop and waits for an in-flight snapshot to finish.
func (s *Snapshotter) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.cancel = nil
	s.ctx = nil
	xlog.Info("Snapshot scheduler stopped")
}

func (s *Snapshotter) run() {
	defer s.wg.Done()

	for {
		next := s.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-s.ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			if err := s.Snapshot(); err != nil {
				xlog.Error("Snapshot failed", "error", err)
			}
		}
	}
}

// Snapshot copies the current store file into the snapshot directory and
// prunes copies beyond the retention count. A missing source file is not an
// error; there is simply nothing to snapshot yet.
func (s *Snapshotter) Snapshot() error {
	data, err := os.ReadFile(s.source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read store file: %w", err)
	}

	name := fmt.Sprintf("notes-%s.json", time.Now().UTC().Format(snapshotTimeFormat))
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	xlog.Debug("Snapshot written", "name", name)

	return s.prune()
}

func (s *Snapshotter) prune() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), "notes-") && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for len(names) > s.keep {
		if err := os.Remove(filepath.Join(s.dir, names[0])); err != nil {
			return fmt.Errorf("failed to prune snapshot: %w", err)
		}
		xlog.Debug("Snapshot pruned", "name", names[0])
		names = names[1:]
	}
	return nil
}
