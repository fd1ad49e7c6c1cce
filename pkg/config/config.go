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

package config

import (
	"errors"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"
)

type Config struct {
	HTTPServer *HTTPServer     `yaml:"http-server,omitempty" json:"http-server,omitempty"`
	Devices    []*DeviceConfig `yaml:"devices,omitempty" json:"devices,omitempty"`
}

type HTTPServer struct {
	Address string `yaml:"address,omitempty" json:"address,omitempty"`
}

func New(file string) (*Config, error) {
	file, err := homedir.Expand(file)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	c := new(Config)
	err = yaml.Unmarshal(b, c)
	if err != nil {
		return nil, err
	}
	err = c.validateSetDefaults()
	return c, err
}

func (c *Config) validateSetDefaults() error {
	if c.HTTPServer == nil {
		c.HTTPServer = &HTTPServer{}
	}
	if c.HTTPServer.Address == "" {
		c.HTTPServer.Address = ":56100"
	}
	if len(c.Devices) == 0 {
		return errors.New("at least one device definition is required")
	}
	seen := make(map[string]struct{}, len(c.Devices))
	for _, d := range c.Devices {
		if err := d.validateSetDefaults(); err != nil {
			return err
		}
		if _, ok := seen[d.Name]; ok {
			return fmt.Errorf("duplicate device name %q", d.Name)
		}
		seen[d.Name] = struct{}{}
	}
	return nil
}
