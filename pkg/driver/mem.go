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

	"github.com/kylelemons/godebug/diff"

	"github.com/iptecharch/netdriver/pkg/config"
)

// memDriver is a functional in-memory device. It exists for wiring tests and
// dry runs: the full lifecycle behaves like a real device with a native
// candidate datastore, without any transport underneath.
//
// Recognized optional-args: "running" seeds the initial running config.
type memDriver struct {
	cfg *config.DeviceConfig
	lc  *Lifecycle

	running   string
	candidate string
	replace   bool

	// test hooks
	failOpen   error
	failCommit error
}

func newMemDriver(_ context.Context, cfg *config.DeviceConfig) (*memDriver, error) {
	return &memDriver{
		cfg:     cfg,
		lc:      NewLifecycle(cfg.Name),
		running: cfg.OptionalArgs["running"],
	}, nil
}

func (d *memDriver) Name() string { return d.cfg.Name }

func (d *memDriver) State() State { return d.lc.State() }

func (d *memDriver) Open(_ context.Context) error {
	if d.lc.IsConnected() {
		return nil
	}
	if d.failOpen != nil {
		return newErr(KindConnection, d.cfg.Name, "open", d.failOpen)
	}
	d.lc.Connect()
	return nil
}

func (d *memDriver) Close(_ context.Context) error {
	d.lc.Shutdown()
	d.candidate = ""
	return nil
}

func (d *memDriver) IsAlive(_ context.Context) bool {
	return d.lc.IsConnected()
}

func (d *memDriver) LoadReplaceCandidate(ctx context.Context, src *Source) error {
	return d.load(ctx, "load-replace", src, true)
}

func (d *memDriver) LoadMergeCandidate(ctx context.Context, src *Source) error {
	return d.load(ctx, "load-merge", src, false)
}

func (d *memDriver) load(_ context.Context, op string, src *Source, replace bool) error {
	if err := d.lc.EnsureConnected(op); err != nil {
		return err
	}
	content, err := src.resolve()
	if err != nil {
		return newErr(KindLoadConfig, d.cfg.Name, op, err)
	}
	d.candidate = content
	d.replace = replace
	return d.lc.StageCandidate(op)
}

func (d *memDriver) merged() string {
	if d.replace {
		return d.candidate
	}
	return mergePreview(d.running, d.candidate)
}

func (d *memDriver) CompareConfig(_ context.Context) (string, error) {
	if err := d.lc.EnsureConnected("compare"); err != nil {
		return "", err
	}
	if !d.lc.HasCandidate() {
		return "", nil
	}
	return diff.Diff(d.running, d.merged()), nil
}

func (d *memDriver) CommitConfig(_ context.Context) error {
	if err := d.lc.EnsureCandidate("commit"); err != nil {
		return err
	}
	if d.failCommit != nil {
		return newErr(KindCommit, d.cfg.Name, "commit", d.failCommit)
	}
	d.lc.PushCheckpoint(d.running)
	d.running = d.merged()
	d.candidate = ""
	d.lc.ClearCandidate()
	return nil
}

func (d *memDriver) DiscardConfig(_ context.Context) error {
	if err := d.lc.EnsureCandidate("discard"); err != nil {
		return err
	}
	d.candidate = ""
	d.lc.ClearCandidate()
	return nil
}

func (d *memDriver) Rollback(_ context.Context) error {
	prev, err := d.lc.Checkpoint("rollback")
	if err != nil {
		return err
	}
	d.running = prev
	d.lc.PopCheckpoint()
	return nil
}

func (d *memDriver) CLI(_ context.Context, commands []string) (*CommandResults, error) {
	if err := d.lc.EnsureConnected("cli"); err != nil {
		return nil, err
	}
	res := &CommandResults{}
	for i, c := range commands {
		res.add(c, fmt.Sprintf("mem(%s) #%d: %s", d.cfg.Name, i, c))
	}
	return res, nil
}
