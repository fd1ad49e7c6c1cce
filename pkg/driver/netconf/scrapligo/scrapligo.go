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
	"strings"

	"github.com/beevik/etree"
	scraplinetconf "github.com/scrapli/scrapligo/driver/netconf"
	"github.com/scrapli/scrapligo/driver/options"
	"github.com/scrapli/scrapligo/util"

	"github.com/iptecharch/netdriver/pkg/config"
	"github.com/iptecharch/netdriver/pkg/driver/netconf"
)

// Transport implements netconf.Transport on top of a scrapligo
// NETCONF driver.
type Transport struct {
	cfg    *config.DeviceConfig
	driver *scraplinetconf.Driver
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
		options.WithNetconfForceSelfClosingTags(),
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
	if t.cfg.NetconfOptions != nil && t.cfg.NetconfOptions.PreferredNCVersion != "" {
		opts = append(opts,
			options.WithNetconfPreferredVersion(t.cfg.NetconfOptions.PreferredNCVersion),
		)
	}

	d, err := scraplinetconf.NewDriver(t.cfg.Address, opts...)
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

func (t *Transport) GetConfig(_ context.Context, source string) (string, error) {
	if t.driver == nil {
		return "", fmt.Errorf("transport not open")
	}
	resp, err := t.driver.GetConfig(source)
	if err != nil {
		return "", err
	}
	if resp.Failed != nil {
		return "", resp.Failed
	}

	x := etree.NewDocument()
	err = x.ReadFromString(resp.Result)
	if err != nil {
		return "", err
	}

	// the actual config is contained under /rpc-reply/data/ in the result
	// document, so we are extracting that portion
	newRootXpath := "/rpc-reply/data"
	r := x.FindElement(newRootXpath)
	if r == nil {
		return "", fmt.Errorf("unable to find %q in %s", newRootXpath, resp.Result)
	}

	var sb strings.Builder
	for _, el := range r.ChildElements() {
		d := etree.NewDocumentWithRoot(el.Copy())
		d.Indent(2)
		s, err := d.WriteToString()
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

func (t *Transport) EditConfig(_ context.Context, target, config string, replace bool) error {
	if t.driver == nil {
		return fmt.Errorf("transport not open")
	}
	var err error
	if replace {
		config, err = netconf.StampReplace(config)
		if err != nil {
			return err
		}
	}
	// add the <config/> tag to the provided config data
	xdoc := fmt.Sprintf("<config>%s</config>", config)

	resp, err := t.driver.EditConfig(target, xdoc)
	if err != nil {
		return err
	}
	if resp.Failed != nil {
		return resp.Failed
	}
	return rpcReplyErrors(resp.Result)
}

func (t *Transport) Validate(_ context.Context, source string) error {
	if t.driver == nil {
		return fmt.Errorf("transport not open")
	}
	resp, err := t.driver.Validate(source)
	if err != nil {
		return err
	}
	if resp.Failed != nil {
		return resp.Failed
	}
	return nil
}

func (t *Transport) Commit(_ context.Context) error {
	if t.driver == nil {
		return fmt.Errorf("transport not open")
	}
	resp, err := t.driver.Commit()
	if err != nil {
		return err
	}
	if resp.Failed != nil {
		return resp.Failed
	}
	return nil
}

func (t *Transport) Discard(_ context.Context) error {
	if t.driver == nil {
		return fmt.Errorf("transport not open")
	}
	resp, err := t.driver.Discard()
	if err != nil {
		return err
	}
	if resp.Failed != nil {
		return resp.Failed
	}
	return nil
}

// rpcReplyErrors surfaces rpc-error elements with severity error that the
// device reported in an otherwise delivered rpc-reply.
func rpcReplyErrors(result string) error {
	x := etree.NewDocument()
	if err := x.ReadFromString(result); err != nil {
		// not xml, nothing to check
		return nil
	}
	errs, err := netconf.FilterRPCErrors(x, "error")
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, ", "))
	}
	return nil
}
