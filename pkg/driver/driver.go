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

// Package driver defines the vendor-neutral contract for managing network
// devices: session lifecycle, candidate configuration staging, diffing,
// commit/rollback and raw command execution. Concrete variants translate
// these operations into their southbound protocol; the driver layer owns
// the lifecycle semantics.
//
// A Driver is exclusively owned by one logical workflow at a time.
// Concurrent calls on the same Driver are not safe without external
// synchronization. Independent drivers may run concurrently.
package driver

import (
	"context"
	"fmt"

	"github.com/iptecharch/netdriver/pkg/config"
	ncscrapli "github.com/iptecharch/netdriver/pkg/driver/netconf/scrapligo"
	clgen "github.com/iptecharch/netdriver/pkg/driver/term/scrapligo"
)

type Driver interface {
	// Open establishes the transport session. A no-op when already open.
	Open(ctx context.Context) error
	// Close tears down the transport session. A no-op when already closed,
	// and safe on a session that was never opened.
	Close(ctx context.Context) error
	// IsAlive reports liveness of both the transport and the protocol
	// session on top of it.
	IsAlive(ctx context.Context) bool
	// LoadReplaceCandidate stages a candidate that replaces the running
	// configuration entirely on commit.
	LoadReplaceCandidate(ctx context.Context, src *Source) error
	// LoadMergeCandidate stages a candidate that is merged into the running
	// configuration on commit.
	LoadMergeCandidate(ctx context.Context, src *Source) error
	// CompareConfig refreshes the running view and returns the diff between
	// running and candidate. Empty when no candidate is pending.
	CompareConfig(ctx context.Context) (string, error)
	// CommitConfig activates the candidate, all-or-nothing. On failure the
	// running configuration is unchanged and the candidate stays pending.
	CommitConfig(ctx context.Context) error
	// DiscardConfig drops the pending candidate.
	DiscardConfig(ctx context.Context) error
	// Rollback restores the running configuration active before the most
	// recent successful commit.
	Rollback(ctx context.Context) error
	// CLI executes the commands in order and returns their outputs.
	CLI(ctx context.Context, commands []string) (*CommandResults, error)
	// Name returns the device name.
	Name() string
	// State returns the current lifecycle state.
	State() State
}

// New creates a driver for the given device config.
func New(ctx context.Context, cfg *config.DeviceConfig) (Driver, error) {
	switch cfg.Driver {
	case "netconf":
		return newNCDriver(ctx, cfg, ncscrapli.NewTransport(cfg))
	case "cli":
		return newCLIDriver(ctx, cfg, clgen.NewTransport(cfg))
	case "mem":
		return newMemDriver(ctx, cfg)
	}
	return nil, fmt.Errorf("unknown driver type %q", cfg.Driver)
}
