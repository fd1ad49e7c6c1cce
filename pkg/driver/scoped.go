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
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

// WithSession runs fn against an opened driver and guarantees the session is
// closed afterwards, however fn exits.
//
// Open failures are surfaced as a connection error and fn never runs.
// A close failure while fn's own error is propagating is joined to it with
// errors.Join, so neither is lost; callers can still match fn's error with
// errors.Is/As. Errors outside the declared taxonomy pass through unchanged,
// with a log line recommending they be reported.
func WithSession(ctx context.Context, d Driver, fn func(ctx context.Context, d Driver) error) (err error) {
	if oerr := d.Open(ctx); oerr != nil {
		if KindOf(oerr) == KindUnexpected {
			oerr = newErr(KindConnection, d.Name(), "open", oerr)
		}
		return oerr
	}
	defer func() {
		cerr := d.Close(ctx)
		if cerr != nil {
			err = errors.Join(err, cerr)
		}
		if err != nil && KindOf(err) == KindUnexpected {
			log.Errorf("device %s: unclassified error escaped a scoped session, please report it: %v", d.Name(), err)
		}
	}()
	return fn(ctx, d)
}
