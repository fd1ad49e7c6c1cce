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
	"time"
)

const (
	defaultNetconfPort = 830
	defaultSSHPort     = 22
	defaultTimeout     = 60 * time.Second
)

type DeviceConfig struct {
	// device name, unique across the config
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	// Driver type, one of: netconf, cli, mem
	Driver string `yaml:"driver,omitempty" json:"driver,omitempty"`
	// device address
	Address string `yaml:"address,omitempty" json:"address,omitempty"`
	Port    uint32 `yaml:"port,omitempty" json:"port,omitempty"`
	// device credentials
	Credentials *Creds `yaml:"credentials,omitempty" json:"credentials,omitempty"`
	// per RPC timeout
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`

	NetconfOptions *NetconfOptions `yaml:"netconf-options,omitempty" json:"netconf-options,omitempty"`
	CLIOptions     *CLIOptions     `yaml:"cli-options,omitempty" json:"cli-options,omitempty"`

	// driver specific options, recognized keys are documented per driver.
	// Unrecognized keys are ignored.
	OptionalArgs map[string]string `yaml:"optional-args,omitempty" json:"optional-args,omitempty"`
}

type Creds struct {
	Username string `yaml:"username,omitempty" json:"username,omitempty"`
	Password string `yaml:"password,omitempty" json:"password,omitempty"`
	Token    string `yaml:"token,omitempty" json:"token,omitempty"`
}

type NetconfOptions struct {
	// sets the preferred NC version: 1.0 or 1.1
	PreferredNCVersion string `yaml:"preferred-nc-version,omitempty" json:"preferred-nc-version,omitempty"`
	// validate the candidate datastore before commit, on devices
	// that advertise :validate
	ValidateBeforeCommit bool `yaml:"validate-before-commit,omitempty" json:"validate-before-commit,omitempty"`
}

type CLIOptions struct {
	// scrapligo platform name, e.g. cisco_iosxe, arista_eos
	Platform string `yaml:"platform,omitempty" json:"platform,omitempty"`
	// command used to fetch the running configuration
	GetRunningCommand string `yaml:"get-running-command,omitempty" json:"get-running-command,omitempty"`
	// command issued after a successful config apply, e.g. a save/write
	SaveCommand string `yaml:"save-command,omitempty" json:"save-command,omitempty"`
}

func (d *DeviceConfig) validateSetDefaults() error {
	if d.Name == "" {
		return errors.New("device name is required")
	}
	switch d.Driver {
	case "netconf":
		if d.Port == 0 {
			d.Port = defaultNetconfPort
		}
		if d.NetconfOptions == nil {
			d.NetconfOptions = &NetconfOptions{}
		}
	case "cli":
		if d.Port == 0 {
			d.Port = defaultSSHPort
		}
		if d.CLIOptions == nil {
			d.CLIOptions = &CLIOptions{}
		}
		if d.CLIOptions.Platform == "" {
			return fmt.Errorf("device %q: cli-options.platform is required", d.Name)
		}
		if d.CLIOptions.GetRunningCommand == "" {
			d.CLIOptions.GetRunningCommand = "show running-config"
		}
	case "mem":
	default:
		return fmt.Errorf("device %q: unknown driver type %q", d.Name, d.Driver)
	}
	if d.Driver != "mem" && d.Address == "" {
		return fmt.Errorf("device %q: address is required", d.Name)
	}
	if d.Timeout <= 0 {
		d.Timeout = defaultTimeout
	}
	return nil
}
