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

// CommandResult is the output of a single CLI command.
type CommandResult struct {
	Command string `json:"command"`
	Output  string `json:"output"`
}

// CommandResults holds CLI outputs in execution order. Duplicate commands in
// one invocation are all executed and all present in the ordered view; the
// keyed view is last-write-wins for duplicates.
type CommandResults struct {
	results []CommandResult
}

func (r *CommandResults) add(command, output string) {
	r.results = append(r.results, CommandResult{Command: command, Output: output})
}

// All returns the results in the order the commands were executed.
func (r *CommandResults) All() []CommandResult {
	return r.results
}

// Map returns the outputs keyed by the literal command text. When the same
// command was issued more than once the last output wins.
func (r *CommandResults) Map() map[string]string {
	m := make(map[string]string, len(r.results))
	for _, cr := range r.results {
		m[cr.Command] = cr.Output
	}
	return m
}

// Output returns the output of the given command and whether it was executed.
func (r *CommandResults) Output(command string) (string, bool) {
	for i := len(r.results) - 1; i >= 0; i-- {
		if r.results[i].Command == command {
			return r.results[i].Output, true
		}
	}
	return "", false
}

func (r *CommandResults) Len() int { return len(r.results) }
