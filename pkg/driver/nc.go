// Copyright 2024 Nokia
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package driver

import (
	"context"

	"github.com/kylelemons/godebug/diff"
	log "github.com/sirupsen/logrus"

	"github.com/iptecharch/netdriver/pkg/config"
	"github.com/iptecharch/netdriver/pkg/driver/netconf"
)

// ncDriver drives devices with a native candidate datastore. Load, commit
// and discard map onto the device's own candidate handling; rollback replays
// the running configuration snapshotted before the last commit.
type ncDriver struct {
	cfg       *config.DeviceConfig
	transport netconf.Transport
	lc        *Lifecycle
}

func newNCDriver(_ context.Context, cfg *config.DeviceConfig, t netconf.Transport) (*ncDriver, error) {
	return &ncDriver{
		cfg:       cfg,
		transport: t,
		lc:        NewLifecycle(cfg.Name),
	}, nil
}

func (d *ncDriver) Name() string { return d.cfg.Name }

func (d *ncDriver) State() State { return d.lc.State() }

func (d *ncDriver) Open(ctx context.Context) error {
	if d.lc.IsConnected() {
		return nil
	}
	err := d.transport.Open(ctx)
	if err != nil {
		return newErr(KindConnection, d.cfg.Name, "open", err)
	}
	d.lc.Connect()
	log.Debugf("device %s: netconf session opened", d.cfg.Name)
	return nil
}

func (d *ncDriver) Close(_ context.Context) error {
	if d.lc.State() == Closed {
		return nil
	}
	err := d.transport.Close()
	d.lc.Shutdown()
	if err != nil {
		return newErr(KindConnection, d.cfg.Name, "close", err)
	}
	return nil
}

func (d *ncDriver) IsAlive(_ context.Context) bool {
	return d.lc.IsConnected() && d.transport.IsAlive()
}

func (d *ncDriver) LoadReplaceCandidate(ctx context.Context, src *Source) error {
	return d.load(ctx, "load-replace", src, true)
}

func (d *ncDriver) LoadMergeCandidate(ctx context.Context, src *Source) error {
	return d.load(ctx, "load-merge", src, false)
}

func (d *ncDriver) load(ctx context.Context, op string, src *Source, replace bool) error {
	if err := d.lc.EnsureConnected(op); err != nil {
		return err
	}
	content, err := src.resolve()
	if err != nil {
		return newErr(KindLoadConfig, d.cfg.Name, op, err)
	}
	// a pending candidate is overwritten, reset the device candidate first
	if d.lc.HasCandidate() {
		if err := d.transport.Discard(ctx); err != nil {
			return newErr(KindLoadConfig, d.cfg.Name, op, err)
		}
	}
	err = d.transport.EditConfig(ctx, "candidate", content, replace)
	if err != nil {
		// carries the device's rpc-error payload
		return newErr(KindLoadConfig, d.cfg.Name, op, err)
	}
	return d.lc.StageCandidate(op)
}

func (d *ncDriver) CompareConfig(ctx context.Context) (string, error) {
	if err := d.lc.EnsureConnected("compare"); err != nil {
		return "", err
	}
	if !d.lc.HasCandidate() {
		return "", nil
	}
	running, err := d.transport.GetConfig(ctx, "running")
	if err != nil {
		return "", newErr(KindConnection, d.cfg.Name, "compare", err)
	}
	candidate, err := d.transport.GetConfig(ctx, "candidate")
	if err != nil {
		return "", newErr(KindConnection, d.cfg.Name, "compare", err)
	}
	return diff.Diff(running, candidate), nil
}

func (d *ncDriver) CommitConfig(ctx context.Context) error {
	if err := d.lc.EnsureCandidate("commit"); err != nil {
		return err
	}
	running, err := d.transport.GetConfig(ctx, "running")
	if err != nil {
		return newErr(KindCommit, d.cfg.Name, "commit", err)
	}
	if d.cfg.NetconfOptions != nil && d.cfg.NetconfOptions.ValidateBeforeCommit {
		if err := d.transport.Validate(ctx, "candidate"); err != nil {
			return newErr(KindCommit, d.cfg.Name, "commit", err)
		}
	}
	err = d.transport.Commit(ctx)
	if err != nil {
		// the device keeps the candidate, running is untouched
		return newErr(KindCommit, d.cfg.Name, "commit", err)
	}
	d.lc.PushCheckpoint(running)
	d.lc.ClearCandidate()
	log.Debugf("device %s: candidate committed", d.cfg.Name)
	return nil
}

func (d *ncDriver) DiscardConfig(ctx context.Context) error {
	if err := d.lc.EnsureCandidate("discard"); err != nil {
		return err
	}
	err := d.transport.Discard(ctx)
	if err != nil {
		return newErr(KindConnection, d.cfg.Name, "discard", err)
	}
	d.lc.ClearCandidate()
	return nil
}

func (d *ncDriver) Rollback(ctx context.Context) error {
	prev, err := d.lc.Checkpoint("rollback")
	if err != nil {
		return err
	}
	// a pending candidate would be clobbered by the rollback edit, drop it
	if d.lc.HasCandidate() {
		if err := d.transport.Discard(ctx); err != nil {
			return newErr(KindRollback, d.cfg.Name, "rollback", err)
		}
		d.lc.ClearCandidate()
	}
	err = d.transport.EditConfig(ctx, "candidate", prev, true)
	if err != nil {
		return newErr(KindRollback, d.cfg.Name, "rollback", err)
	}
	err = d.transport.Commit(ctx)
	if err != nil {
		return newErr(KindRollback, d.cfg.Name, "rollback", err)
	}
	d.lc.PopCheckpoint()
	log.Debugf("device %s: rolled back to pre-commit running config", d.cfg.Name)
	return nil
}

// CLI is not available over NETCONF.
func (d *ncDriver) CLI(_ context.Context, _ []string) (*CommandResults, error) {
	return nil, newErr(KindNotSupported, d.cfg.Name, "cli", nil)
}
