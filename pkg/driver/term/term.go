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

// Package term defines the transport collaborator used by the terminal
// (screen scraping) driver variant. The device has no candidate datastore;
// candidate semantics are emulated in the driver layer.
package term

import "context"

type Transport interface {
	// Open establishes the terminal session. A no-op if already open.
	Open(ctx context.Context) error
	// Close tears down the session. Safe on a session that never opened.
	Close() error
	// IsAlive reports whether the session is usable, covering both the
	// transport and the interactive session on top of it.
	IsAlive() bool
	// SendCommand executes a single operational command and returns
	// its output
	SendCommand(ctx context.Context, command string) (string, error)
	// GetRunning fetches the running configuration as text
	GetRunning(ctx context.Context) (string, error)
	// ApplyConfig pushes configuration lines onto the device
	ApplyConfig(ctx context.Context, config string) error
}
