package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iptecharch/netdriver/pkg/config"
)

func newTestMemDriver(t *testing.T, running string) *memDriver {
	t.Helper()
	d, err := newMemDriver(context.TODO(), &config.DeviceConfig{
		Name:         "mem1",
		Driver:       "mem",
		OptionalArgs: map[string]string{"running": running},
	})
	if err != nil {
		t.Fatalf("newMemDriver() = %v", err)
	}
	return d
}

func TestMemDriver_OperationBeforeOpen(t *testing.T) {
	ctx := context.TODO()
	d := newTestMemDriver(t, "interface lo0 up")

	ops := map[string]func() error{
		"load-replace": func() error { return d.LoadReplaceCandidate(ctx, &Source{Config: "x"}) },
		"load-merge":   func() error { return d.LoadMergeCandidate(ctx, &Source{Config: "x"}) },
		"compare":      func() error { _, err := d.CompareConfig(ctx); return err },
		"commit":       func() error { return d.CommitConfig(ctx) },
		"discard":      func() error { return d.DiscardConfig(ctx) },
		"rollback":     func() error { return d.Rollback(ctx) },
		"cli":          func() error { _, err := d.CLI(ctx, []string{"show version"}); return err },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, ErrNotConnected) {
			t.Errorf("%s before open = %v, want not-connected", name, err)
		}
	}
	if d.IsAlive(ctx) {
		t.Errorf("IsAlive() before open = true, want false")
	}
}

func TestMemDriver_MergeCommitRollback(t *testing.T) {
	ctx := context.TODO()
	d := newTestMemDriver(t, "interface lo0 up")

	if err := d.Open(ctx); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if err := d.LoadMergeCandidate(ctx, &Source{Config: "interface X up"}); err != nil {
		t.Fatalf("LoadMergeCandidate() = %v", err)
	}
	df, err := d.CompareConfig(ctx)
	if err != nil {
		t.Fatalf("CompareConfig() = %v", err)
	}
	if df == "" || !strings.Contains(df, "interface X up") {
		t.Fatalf("CompareConfig() = %q, want a diff containing the merged line", df)
	}
	if err := d.CommitConfig(ctx); err != nil {
		t.Fatalf("CommitConfig() = %v", err)
	}
	if !strings.Contains(d.running, "interface X up") {
		t.Fatalf("running after commit = %q, does not contain the merged line", d.running)
	}
	if d.State() != Connected {
		t.Errorf("State() after commit = %v, want connected", d.State())
	}
	if err := d.Rollback(ctx); err != nil {
		t.Fatalf("Rollback() = %v", err)
	}
	if d.running != "interface lo0 up" {
		t.Errorf("running after rollback = %q, want the pre-commit config", d.running)
	}
}

func TestMemDriver_CommitAllOrNothing(t *testing.T) {
	ctx := context.TODO()
	d := newTestMemDriver(t, "interface lo0 up")
	if err := d.Open(ctx); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if err := d.LoadReplaceCandidate(ctx, &Source{Config: "interface eth0 up"}); err != nil {
		t.Fatalf("LoadReplaceCandidate() = %v", err)
	}

	d.failCommit = errors.New("device rejected commit")
	err := d.CommitConfig(ctx)
	if !errors.Is(err, ErrCommit) {
		t.Fatalf("CommitConfig() = %v, want commit error", err)
	}
	if d.running != "interface lo0 up" {
		t.Errorf("running after failed commit = %q, want unchanged", d.running)
	}
	if d.State() != CandidatePending {
		t.Errorf("State() after failed commit = %v, want candidate-pending", d.State())
	}

	// retry after the failure clears
	d.failCommit = nil
	if err := d.CommitConfig(ctx); err != nil {
		t.Fatalf("CommitConfig() retry = %v", err)
	}
	if d.running != "interface eth0 up" {
		t.Errorf("running after retry = %q, want the candidate", d.running)
	}
}

func TestMemDriver_CandidateOverwrite(t *testing.T) {
	ctx := context.TODO()
	d := newTestMemDriver(t, "a")
	if err := d.Open(ctx); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if err := d.LoadReplaceCandidate(ctx, &Source{Config: "b"}); err != nil {
		t.Fatalf("LoadReplaceCandidate() = %v", err)
	}
	if err := d.LoadReplaceCandidate(ctx, &Source{Config: "c"}); err != nil {
		t.Fatalf("LoadReplaceCandidate() overwrite = %v", err)
	}
	if err := d.CommitConfig(ctx); err != nil {
		t.Fatalf("CommitConfig() = %v", err)
	}
	if d.running != "c" {
		t.Errorf("running = %q, want only the most recent candidate", d.running)
	}
}

func TestMemDriver_DiscardThenCompare(t *testing.T) {
	ctx := context.TODO()
	d := newTestMemDriver(t, "a")
	if err := d.Open(ctx); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if err := d.LoadMergeCandidate(ctx, &Source{Config: "b"}); err != nil {
		t.Fatalf("LoadMergeCandidate() = %v", err)
	}
	if err := d.DiscardConfig(ctx); err != nil {
		t.Fatalf("DiscardConfig() = %v", err)
	}
	df, err := d.CompareConfig(ctx)
	if err != nil {
		t.Fatalf("CompareConfig() = %v", err)
	}
	if df != "" {
		t.Errorf("CompareConfig() after discard = %q, want empty", df)
	}
	// a second discard has nothing to drop
	if err := d.DiscardConfig(ctx); !errors.Is(err, ErrNoCandidate) {
		t.Errorf("DiscardConfig() without candidate = %v, want no-candidate", err)
	}
}

func TestMemDriver_RollbackWithoutCommit(t *testing.T) {
	ctx := context.TODO()
	d := newTestMemDriver(t, "a")
	if err := d.Open(ctx); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if err := d.Rollback(ctx); !errors.Is(err, ErrRollback) {
		t.Errorf("Rollback() without commits = %v, want rollback error", err)
	}
}

func TestMemDriver_SourceFilePrecedence(t *testing.T) {
	ctx := context.TODO()
	fn := filepath.Join(t.TempDir(), "candidate.cfg")
	if err := os.WriteFile(fn, []byte("from file"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := newTestMemDriver(t, "a")
	if err := d.Open(ctx); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	// both given, the file wins and the inline string is ignored
	if err := d.LoadReplaceCandidate(ctx, &Source{Filename: fn, Config: "from inline"}); err != nil {
		t.Fatalf("LoadReplaceCandidate() = %v", err)
	}
	if d.candidate != "from file" {
		t.Errorf("candidate = %q, want the file content", d.candidate)
	}

	if err := d.LoadReplaceCandidate(ctx, &Source{Filename: filepath.Join(t.TempDir(), "missing.cfg")}); !errors.Is(err, ErrLoadConfig) {
		t.Errorf("LoadReplaceCandidate() with unreadable file = %v, want load-config error", err)
	}
	if err := d.LoadReplaceCandidate(ctx, nil); !errors.Is(err, ErrLoadConfig) {
		t.Errorf("LoadReplaceCandidate(nil) = %v, want load-config error", err)
	}
}

func TestMemDriver_CLIDuplicates(t *testing.T) {
	ctx := context.TODO()
	d := newTestMemDriver(t, "a")
	if err := d.Open(ctx); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	res, err := d.CLI(ctx, []string{"show version", "show version"})
	if err != nil {
		t.Fatalf("CLI() = %v", err)
	}
	// both executions are present in order, the keyed view holds the last
	if res.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", res.Len())
	}
	if len(res.Map()) != 1 {
		t.Errorf("Map() has %d keys, want 1", len(res.Map()))
	}
	if res.All()[0].Output == res.All()[1].Output {
		t.Errorf("duplicate commands produced identical outputs, want both executions")
	}
}

func TestMemDriver_CloseAndReopen(t *testing.T) {
	ctx := context.TODO()
	d := newTestMemDriver(t, "a")

	// close on a session that was never opened must not fail
	if err := d.Close(ctx); err != nil {
		t.Fatalf("Close() on fresh session = %v", err)
	}
	if d.State() != Closed {
		t.Errorf("State() = %v, want closed", d.State())
	}
	if err := d.Open(ctx); err != nil {
		t.Fatalf("Open() after close = %v", err)
	}
	if d.State() != Connected {
		t.Errorf("State() = %v, want connected", d.State())
	}
}
