package driver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/iptecharch/netdriver/mocks/mocknetconf"
	"github.com/iptecharch/netdriver/pkg/config"
)

func newTestNCDriver(t *testing.T, c *gomock.Controller) (*ncDriver, *mocknetconf.MockTransport) {
	t.Helper()
	tr := mocknetconf.NewMockTransport(c)
	d, err := newNCDriver(context.TODO(), &config.DeviceConfig{
		Name:           "nc1",
		Driver:         "netconf",
		Address:        "198.51.100.10",
		Port:           830,
		NetconfOptions: &config.NetconfOptions{},
	}, tr)
	if err != nil {
		t.Fatalf("newNCDriver() = %v", err)
	}
	return d, tr
}

func TestNCDriver_OpenClose(t *testing.T) {
	ctx := context.TODO()
	c := gomock.NewController(t)
	d, tr := newTestNCDriver(t, c)

	tr.EXPECT().Open(gomock.Any()).Return(errors.New("auth failed"))
	err := d.Open(ctx)
	if !errors.Is(err, ErrConnection) {
		t.Fatalf("Open() = %v, want connection error", err)
	}
	if d.State() != Disconnected {
		t.Errorf("State() after failed open = %v, want disconnected", d.State())
	}

	// close after a failed open must not fail
	tr.EXPECT().Close().Return(nil)
	if err := d.Close(ctx); err != nil {
		t.Fatalf("Close() after failed open = %v", err)
	}

	tr.EXPECT().Open(gomock.Any()).Return(nil)
	if err := d.Open(ctx); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if d.State() != Connected {
		t.Errorf("State() = %v, want connected", d.State())
	}
	// a second open is a no-op, no transport call expected
	if err := d.Open(ctx); err != nil {
		t.Fatalf("Open() while connected = %v", err)
	}

	tr.EXPECT().IsAlive().Return(true)
	if !d.IsAlive(ctx) {
		t.Errorf("IsAlive() = false, want true")
	}

	tr.EXPECT().Close().Return(nil)
	if err := d.Close(ctx); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	// a second close is a no-op
	if err := d.Close(ctx); err != nil {
		t.Fatalf("Close() while closed = %v", err)
	}
	if d.IsAlive(ctx) {
		t.Errorf("IsAlive() after close = true, want false")
	}
}

func TestNCDriver_LoadCompareCommit(t *testing.T) {
	ctx := context.TODO()
	c := gomock.NewController(t)
	d, tr := newTestNCDriver(t, c)

	tr.EXPECT().Open(gomock.Any()).Return(nil)
	if err := d.Open(ctx); err != nil {
		t.Fatalf("Open() = %v", err)
	}

	cfg := "<interfaces><interface><name>X</name><enabled>true</enabled></interface></interfaces>"
	tr.EXPECT().EditConfig(gomock.Any(), "candidate", cfg, false).Return(nil)
	if err := d.LoadMergeCandidate(ctx, &Source{Config: cfg}); err != nil {
		t.Fatalf("LoadMergeCandidate() = %v", err)
	}
	if d.State() != CandidatePending {
		t.Errorf("State() = %v, want candidate-pending", d.State())
	}

	// loading again resets the device candidate first
	tr.EXPECT().Discard(gomock.Any()).Return(nil)
	tr.EXPECT().EditConfig(gomock.Any(), "candidate", cfg, true).Return(nil)
	if err := d.LoadReplaceCandidate(ctx, &Source{Config: cfg}); err != nil {
		t.Fatalf("LoadReplaceCandidate() = %v", err)
	}

	tr.EXPECT().GetConfig(gomock.Any(), "running").Return("old config\n", nil)
	tr.EXPECT().GetConfig(gomock.Any(), "candidate").Return("old config\nnew line\n", nil)
	df, err := d.CompareConfig(ctx)
	if err != nil {
		t.Fatalf("CompareConfig() = %v", err)
	}
	if !strings.Contains(df, "new line") {
		t.Errorf("CompareConfig() = %q, want a diff containing the candidate line", df)
	}

	// failing commit leaves the candidate pending
	tr.EXPECT().GetConfig(gomock.Any(), "running").Return("old config\n", nil)
	tr.EXPECT().Commit(gomock.Any()).Return(errors.New("commit rejected"))
	err = d.CommitConfig(ctx)
	if !errors.Is(err, ErrCommit) {
		t.Fatalf("CommitConfig() = %v, want commit error", err)
	}
	if d.State() != CandidatePending {
		t.Errorf("State() after failed commit = %v, want candidate-pending", d.State())
	}

	tr.EXPECT().GetConfig(gomock.Any(), "running").Return("old config\n", nil)
	tr.EXPECT().Commit(gomock.Any()).Return(nil)
	if err := d.CommitConfig(ctx); err != nil {
		t.Fatalf("CommitConfig() = %v", err)
	}
	if d.State() != Connected {
		t.Errorf("State() after commit = %v, want connected", d.State())
	}

	// rollback replays the pre-commit running config
	tr.EXPECT().EditConfig(gomock.Any(), "candidate", "old config\n", true).Return(nil)
	tr.EXPECT().Commit(gomock.Any()).Return(nil)
	if err := d.Rollback(ctx); err != nil {
		t.Fatalf("Rollback() = %v", err)
	}
	if err := d.Rollback(ctx); !errors.Is(err, ErrRollback) {
		t.Errorf("Rollback() with drained history = %v, want rollback error", err)
	}
}

func TestNCDriver_LoadRejected(t *testing.T) {
	ctx := context.TODO()
	c := gomock.NewController(t)
	d, tr := newTestNCDriver(t, c)

	tr.EXPECT().Open(gomock.Any()).Return(nil)
	if err := d.Open(ctx); err != nil {
		t.Fatalf("Open() = %v", err)
	}

	tr.EXPECT().EditConfig(gomock.Any(), "candidate", "bogus", false).
		Return(errors.New("<rpc-error>syntax error</rpc-error>"))
	err := d.LoadMergeCandidate(ctx, &Source{Config: "bogus"})
	if !errors.Is(err, ErrLoadConfig) {
		t.Fatalf("LoadMergeCandidate() = %v, want load-config error", err)
	}
	if !strings.Contains(err.Error(), "syntax error") {
		t.Errorf("LoadMergeCandidate() error %q does not carry the device message", err)
	}
	if d.State() != Connected {
		t.Errorf("State() after rejected load = %v, want connected", d.State())
	}
}

func TestNCDriver_ValidateBeforeCommit(t *testing.T) {
	ctx := context.TODO()
	c := gomock.NewController(t)
	tr := mocknetconf.NewMockTransport(c)
	d, err := newNCDriver(context.TODO(), &config.DeviceConfig{
		Name:           "nc1",
		Driver:         "netconf",
		NetconfOptions: &config.NetconfOptions{ValidateBeforeCommit: true},
	}, tr)
	if err != nil {
		t.Fatalf("newNCDriver() = %v", err)
	}

	tr.EXPECT().Open(gomock.Any()).Return(nil)
	tr.EXPECT().EditConfig(gomock.Any(), "candidate", "cfg", false).Return(nil)
	tr.EXPECT().GetConfig(gomock.Any(), "running").Return("run", nil)
	tr.EXPECT().Validate(gomock.Any(), "candidate").Return(errors.New("invalid"))

	if err := d.Open(ctx); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if err := d.LoadMergeCandidate(ctx, &Source{Config: "cfg"}); err != nil {
		t.Fatalf("LoadMergeCandidate() = %v", err)
	}
	if err := d.CommitConfig(ctx); !errors.Is(err, ErrCommit) {
		t.Fatalf("CommitConfig() with failing validate = %v, want commit error", err)
	}
	if d.State() != CandidatePending {
		t.Errorf("State() = %v, want candidate-pending", d.State())
	}
}

func TestNCDriver_CLINotSupported(t *testing.T) {
	ctx := context.TODO()
	c := gomock.NewController(t)
	d, tr := newTestNCDriver(t, c)

	tr.EXPECT().Open(gomock.Any()).Return(nil)
	if err := d.Open(ctx); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	_, err := d.CLI(ctx, []string{"show version"})
	if !errors.Is(err, ErrNotSupported) {
		t.Errorf("CLI() = %v, want not-supported", err)
	}
	if KindOf(err) != KindNotSupported {
		t.Errorf("KindOf() = %v, want not-supported", KindOf(err))
	}
}
