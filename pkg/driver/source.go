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
	"os"

	homedir "github.com/mitchellh/go-homedir"
)

// Source provides candidate configuration content, either from a file or
// from an inline string. When both are set the file takes precedence and
// the inline string is ignored.
type Source struct {
	Filename string
	Config   string
}

// resolve returns the configuration text the source points at.
func (s *Source) resolve() (string, error) {
	if s == nil {
		return "", errors.New("no configuration source provided")
	}
	if s.Filename != "" {
		fn, err := homedir.Expand(s.Filename)
		if err != nil {
			return "", err
		}
		b, err := os.ReadFile(fn)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	if s.Config == "" {
		return "", errors.New("no configuration source provided")
	}
	return s.Config, nil
}
