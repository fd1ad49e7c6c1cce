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
	"fmt"
	"strings"

	"github.com/kylelemons/godebug/diff"
	log "github.com/sirupsen/logrus"

	"github.com/iptecharch/netdriver/pkg/config"
	"github.com/iptecharch/netdriver/pkg/driver/term"
)

// cliDriver drives screen scraped devices without a candidate datastore.
// The candidate is staged in the driver; commit snapshots the running
// configuration, applies the candidate and restores the snapshot when the
// apply fails, keeping commit all-or-nothing from the caller's view.
type cliDriver struct {
	cfg       *config.DeviceConfig
	transport term.Transport
	lc        *Lifecycle

	candidate string
	replace   bool
}

func newCLIDriver(_ context.Context, cfg *config.DeviceConfig, t term.Transport) (*cliDriver, error) {
	return &cliDriver{
		cfg:       cfg,
		transport: t,
		lc:        NewLifecycle(cfg.Name),
	}, nil
}

func (d *cliDriver) Name() string { return d.cfg.Name }

func (d *cliDriver) State() State { return d.lc.State() }

func (d *cliDriver) Open(ctx context.Context) error {
	if d.lc.IsConnected() {
		return nil
	}
	err := d.transport.Open(ctx)
	if err != nil {
		return newErr(KindConnection, d.cfg.Name, "open", err)
	}
	d.lc.Connect()
	log.Debugf("device %s: terminal session opened", d.cfg.Name)
	return nil
}

func (d *cliDriver) Close(_ context.Context) error {
	if d.lc.State() == Closed {
		return nil
	}
	err := d.transport.Close()
	d.lc.Shutdown()
	d.candidate = ""
	if err != nil {
		return newErr(KindConnection, d.cfg.Name, "close", err)
	}
	return nil
}

func (d *cliDriver) IsAlive(_ context.Context) bool {
	return d.lc.IsConnected() && d.transport.IsAlive()
}

func (d *cliDriver) LoadReplaceCandidate(ctx context.Context, src *Source) error {
	return d.load(ctx, "load-replace", src, true)
}

func (d *cliDriver) LoadMergeCandidate(ctx context.Context, src *Source) error {
	return d.load(ctx, "load-merge", src, false)
}

func (d *cliDriver) load(_ context.Context, op string, src *Source, replace bool) error {
	if err := d.lc.EnsureConnected(op); err != nil {
		return err
	}
	content, err := src.resolve()
	if err != nil {
		return newErr(KindLoadConfig, d.cfg.Name, op, err)
	}
	// overwrites a pending candidate
	d.candidate = content
	d.replace = replace
	return d.lc.StageCandidate(op)
}

func (d *cliDriver) CompareConfig(ctx context.Context) (string, error) {
	if err := d.lc.EnsureConnected("compare"); err != nil {
		return "", err
	}
	if !d.lc.HasCandidate() {
		return "", nil
	}
	running, err := d.transport.GetRunning(ctx)
	if err != nil {
		return "", newErr(KindConnection, d.cfg.Name, "compare", err)
	}
	target := d.candidate
	if !d.replace {
		target = mergePreview(running, d.candidate)
	}
	return diff.Diff(running, target), nil
}

func (d *cliDriver) CommitConfig(ctx context.Context) error {
	if err := d.lc.EnsureCandidate("commit"); err != nil {
		return err
	}
	snapshot, err := d.transport.GetRunning(ctx)
	if err != nil {
		return newErr(KindCommit, d.cfg.Name, "commit", err)
	}
	err = d.transport.ApplyConfig(ctx, d.candidate)
	if err != nil {
		// best effort restore, the candidate stays pending for retry
		if rerr := d.transport.ApplyConfig(ctx, snapshot); rerr != nil {
			log.Errorf("device %s: restore after failed commit failed: %v", d.cfg.Name, rerr)
		}
		return newErr(KindCommit, d.cfg.Name, "commit", err)
	}
	d.lc.PushCheckpoint(snapshot)
	d.candidate = ""
	d.lc.ClearCandidate()
	log.Debugf("device %s: candidate committed", d.cfg.Name)
	return nil
}

func (d *cliDriver) DiscardConfig(_ context.Context) error {
	if err := d.lc.EnsureCandidate("discard"); err != nil {
		return err
	}
	d.candidate = ""
	d.lc.ClearCandidate()
	return nil
}

func (d *cliDriver) Rollback(ctx context.Context) error {
	prev, err := d.lc.Checkpoint("rollback")
	if err != nil {
		return err
	}
	err = d.transport.ApplyConfig(ctx, prev)
	if err != nil {
		return newErr(KindRollback, d.cfg.Name, "rollback", err)
	}
	d.lc.PopCheckpoint()
	log.Debugf("device %s: rolled back to pre-commit running config", d.cfg.Name)
	return nil
}

func (d *cliDriver) CLI(ctx context.Context, commands []string) (*CommandResults, error) {
	if err := d.lc.EnsureConnected("cli"); err != nil {
		return nil, err
	}
	res := &CommandResults{}
	for _, c := range commands {
		out, err := d.transport.SendCommand(ctx, c)
		if err != nil {
			return nil, newErr(KindConnection, d.cfg.Name, "cli", fmt.Errorf("command %q: %w", c, err))
		}
		res.add(c, out)
	}
	return res, nil
}

// mergePreview approximates the post merge running config for diffing:
// candidate lines not already present are appended in order.
func mergePreview(running, candidate string) string {
	present := make(map[string]struct{})
	for _, ln := range strings.Split(running, "\n") {
		present[strings.TrimSpace(ln)] = struct{}{}
	}
	out := strings.TrimRight(running, "\n")
	for _, ln := range strings.Split(candidate, "\n") {
		if ln == "" {
			continue
		}
		if _, ok := present[strings.TrimSpace(ln)]; ok {
			continue
		}
		out += "\n" + ln
	}
	return out
}
