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

// Package netconf defines the transport collaborator used by the NETCONF
// driver variant. Implementations own the wire protocol; the driver layer
// owns lifecycle semantics.
package netconf

import (
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

type Transport interface {
	// Open establishes the NETCONF session. A no-op if already open.
	Open(ctx context.Context) error
	// Close tears down the session. Safe on a session that never opened.
	Close() error
	// IsAlive reports whether the NETCONF session is usable. This covers
	// both the underlying transport and the protocol session on top of it.
	IsAlive() bool
	// GetConfig retrieves the full configuration of a source datastore
	// (running|candidate) as text
	GetConfig(ctx context.Context, source string) (string, error)
	// EditConfig applies the provided config to the target datastore.
	// With replace set, the submitted subtrees replace their counterparts
	// instead of being merged.
	EditConfig(ctx context.Context, target, config string, replace bool) error
	// Validate a source datastore on devices that advertise :validate
	Validate(ctx context.Context, source string) error
	// Commit applies the candidate changes to the running config
	Commit(ctx context.Context) error
	// Discard a candidate config
	Discard(ctx context.Context) error
}

// StampReplace sets operation="replace" on the top level elements of the
// given config snippet, turning a merge edit-config into a replace of the
// submitted subtrees.
func StampReplace(config string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<config>" + config + "</config>"); err != nil {
		return "", err
	}
	root := doc.Root()
	for _, el := range root.ChildElements() {
		el.CreateAttr("xmlns:nc", "urn:ietf:params:xml:ns:netconf:base:1.0")
		el.CreateAttr("nc:operation", "replace")
	}
	var sb strings.Builder
	for _, el := range root.ChildElements() {
		d := etree.NewDocumentWithRoot(el.Copy())
		s, err := d.WriteToString()
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// FilterRPCErrors takes the given rpc-reply document, filters it for
// rpc-errors with the given severity and returns them collectively
// as a []string
func FilterRPCErrors(xml *etree.Document, severity string) ([]string, error) {
	var result []string
	rpcErrs := xml.FindElements(fmt.Sprintf("//rpc-error[error-severity='%s']", severity))
	for _, rpcErr := range rpcErrs {
		d := etree.NewDocumentWithRoot(rpcErr.Copy())
		s, err := d.WriteToString()
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}
