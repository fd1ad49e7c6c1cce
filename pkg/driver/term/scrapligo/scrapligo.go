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

package scrapligo

import (
	"context"
	"fmt"

	"github.com/scrapli/scrapligo/driver/network"
	"github.com/scrapli/scrapligo/driver/options"
	"github.com/scrapli/scrapligo/platform"
	"github.com/scrapli/scrapligo/util"

	"github.com/iptecharch/netdriver/pkg/config"
)

// Transport implements term.Transport on top of a scrapligo
// platform/network driver.
type Transport struct {
	cfg    *config.DeviceConfig
	driver *network.Driver
}

func NewTransport(cfg *config.DeviceConfig) *Transport {
	return &Transport{cfg: cfg}
}

func (t *Transport) Open(_ context.Context) error {
	if t.driver != nil && t.driver.Transport.IsAlive() {
		return nil
	}

	opts := []util.Option{
		options.WithAuthNoStrictKey(),
		options.WithTransportType("standard"),
		options.WithPort(int(t.cfg.Port)),
		options.WithTimeoutOps(t.cfg.Timeout),
	}
	if t.cfg.Credentials != nil {
		opts = append(opts,
			options.WithAuthUsername(t.cfg.Credentials.Username),
			options.WithAuthPassword(t.cfg.Credentials.Password),
		)
	}

	p, err := platform.NewPlatform(t.cfg.CLIOptions.Platform, t.cfg.Address, opts...)
	if err != nil {
		return err
	}
	d, err := p.GetNetworkDriver()
	if err != nil {
		return err
	}
	err = d.Open()
	if err != nil {
		return err
	}
	t.driver = d
	return nil
}

func (t *Transport) Close() error {
	if t == nil || t.driver == nil {
		return nil
	}
	err := t.driver.Close()
	t.driver = nil
	return err
}

func (t *Transport) IsAlive() bool {
	if t == nil || t.driver == nil {
		return false
	}
	return t.driver.Transport.IsAlive()
}

func (t *Transport) SendCommand(_ context.Context, command string) (string, error) {
	if t.driver == nil {
		return "", fmt.Errorf("transport not open")
	}
	resp, err := t.driver.SendCommand(command)
	if err != nil {
		return "", err
	}
	if resp.Failed != nil {
		return "", resp.Failed
	}
	return resp.Result, nil
}

func (t *Transport) GetRunning(ctx context.Context) (string, error) {
	return t.SendCommand(ctx, t.cfg.CLIOptions.GetRunningCommand)
}

func (t *Transport) ApplyConfig(ctx context.Context, config string) error {
	if t.driver == nil {
		return fmt.Errorf("transport not open")
	}
	resp, err := t.driver.SendConfig(config)
	if err != nil {
		return err
	}
	if resp.Failed != nil {
		return resp.Failed
	}
	if t.cfg.CLIOptions.SaveCommand != "" {
		_, err = t.SendCommand(ctx, t.cfg.CLIOptions.SaveCommand)
	}
	return err
}
