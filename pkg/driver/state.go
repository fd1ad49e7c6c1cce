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

// State is the configuration lifecycle state of a device session.
type State int

const (
	// Disconnected: session created, transport not open
	Disconnected State = iota
	// Connected: transport open, no candidate staged
	Connected
	// CandidatePending: a candidate configuration is staged
	CandidatePending
	// Closed: session torn down. Only Open is valid from here.
	Closed
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connected:
		return "connected"
	case CandidatePending:
		return "candidate-pending"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// Lifecycle tracks the session state machine shared by all driver variants:
// which operations are legal in which state, whether a candidate is staged
// and how many rollback checkpoints exist.
//
// A Lifecycle is owned by a single driver and is not safe for concurrent
// use, matching the session ownership model of the contract.
type Lifecycle struct {
	device  string
	state   State
	history []string
}

func NewLifecycle(device string) *Lifecycle {
	return &Lifecycle{device: device, state: Disconnected}
}

func (l *Lifecycle) State() State { return l.state }

func (l *Lifecycle) Device() string { return l.device }

// Connect transitions into Connected. A no-op when already connected,
// with or without a pending candidate.
func (l *Lifecycle) Connect() {
	if l.state == Connected || l.state == CandidatePending {
		return
	}
	l.state = Connected
}

// Shutdown transitions into Closed from any state. A pending candidate is
// dropped, rollback history does not survive the session.
func (l *Lifecycle) Shutdown() {
	l.state = Closed
	l.history = nil
}

// IsConnected reports whether the session is in Connected or any state
// reachable from it.
func (l *Lifecycle) IsConnected() bool {
	return l.state == Connected || l.state == CandidatePending
}

// EnsureConnected gates operations that require an open session.
func (l *Lifecycle) EnsureConnected(op string) error {
	if l.IsConnected() {
		return nil
	}
	return newErr(KindNotConnected, l.device, op, nil)
}

// StageCandidate records a staged candidate. Staging over a pending
// candidate is legal and overwrites it.
func (l *Lifecycle) StageCandidate(op string) error {
	if err := l.EnsureConnected(op); err != nil {
		return err
	}
	l.state = CandidatePending
	return nil
}

func (l *Lifecycle) HasCandidate() bool { return l.state == CandidatePending }

// EnsureCandidate gates commit and discard.
func (l *Lifecycle) EnsureCandidate(op string) error {
	if err := l.EnsureConnected(op); err != nil {
		return err
	}
	if l.state != CandidatePending {
		return newErr(KindNoCandidate, l.device, op, nil)
	}
	return nil
}

// ClearCandidate returns to Connected after a commit or discard.
func (l *Lifecycle) ClearCandidate() {
	if l.state == CandidatePending {
		l.state = Connected
	}
}

// PushCheckpoint records the running configuration that was active before a
// successful commit, making it the rollback target.
func (l *Lifecycle) PushCheckpoint(running string) {
	l.history = append(l.history, running)
}

// Checkpoint returns the most recent rollback target without consuming it.
func (l *Lifecycle) Checkpoint(op string) (string, error) {
	if err := l.EnsureConnected(op); err != nil {
		return "", err
	}
	if len(l.history) == 0 {
		return "", newErr(KindRollback, l.device, op, nil)
	}
	return l.history[len(l.history)-1], nil
}

// PopCheckpoint consumes the most recent rollback target after a
// successful rollback.
func (l *Lifecycle) PopCheckpoint() {
	if len(l.history) > 0 {
		l.history = l.history[:len(l.history)-1]
	}
}

func (l *Lifecycle) HistoryDepth() int { return len(l.history) }
