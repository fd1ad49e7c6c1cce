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
	"errors"
	"fmt"
)

// Kind is the closed set of failure classes a driver operation can signal.
// Anything that does not classify into one of the declared kinds is
// KindUnexpected.
type Kind int

const (
	KindUnexpected Kind = iota
	// KindConnection: transport open or auth failure
	KindConnection
	// KindNotConnected: operation attempted on a session that is not open
	KindNotConnected
	// KindLoadConfig: candidate content rejected by the device
	KindLoadConfig
	// KindNoCandidate: commit or discard with nothing staged
	KindNoCandidate
	// KindCommit: commit failed, running unchanged, candidate preserved
	KindCommit
	// KindRollback: no rollback history or the device does not retain one
	KindRollback
	// KindNotSupported: capability not implemented by this driver variant
	KindNotSupported
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindNotConnected:
		return "not-connected"
	case KindLoadConfig:
		return "load-config"
	case KindNoCandidate:
		return "no-candidate"
	case KindCommit:
		return "commit"
	case KindRollback:
		return "rollback"
	case KindNotSupported:
		return "not-supported"
	}
	return "unexpected"
}

// Error is the error type produced by drivers. It carries the failure kind,
// the operation name and the device name next to the underlying cause.
type Error struct {
	Kind   Kind
	Op     string
	Device string
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s: %s", e.Device, e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s: %v", e.Device, e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes errors.Is match on the kind, so callers can test against
// the kind sentinels below without knowing the device or operation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op) && (t.Device == "" || t.Device == e.Device)
}

// kind sentinels for errors.Is
var (
	ErrConnection   = &Error{Kind: KindConnection}
	ErrNotConnected = &Error{Kind: KindNotConnected}
	ErrLoadConfig   = &Error{Kind: KindLoadConfig}
	ErrNoCandidate  = &Error{Kind: KindNoCandidate}
	ErrCommit       = &Error{Kind: KindCommit}
	ErrRollback     = &Error{Kind: KindRollback}
	ErrNotSupported = &Error{Kind: KindNotSupported}
)

func newErr(kind Kind, device, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Device: device, Err: err}
}

// KindOf classifies err against the declared taxonomy. Errors produced
// outside of it, including nil wrapping mistakes, classify as KindUnexpected.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnexpected
}
