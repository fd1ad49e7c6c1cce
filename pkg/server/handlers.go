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

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/iptecharch/netdriver/pkg/driver"
)

type loadRequest struct {
	Filename string `json:"filename,omitempty"`
	Config   string `json:"config,omitempty"`
	// Mode is replace or merge, defaults to merge
	Mode string `json:"mode,omitempty"`
}

type cliRequest struct {
	Commands []string `json:"commands"`
}

type errResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type deviceInfo struct {
	Name   string `json:"name"`
	Driver string `json:"driver"`
	State  string `json:"state"`
}

// deviceHandler resolves the device from the URL and serializes access to
// its driver for the duration of the request.
func (s *Server) deviceHandler(fn func(w http.ResponseWriter, r *http.Request, d *device)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["device"]
		s.md.RLock()
		d, ok := s.devices[name]
		s.md.RUnlock()
		if !ok {
			writeErr(w, http.StatusNotFound, "unknown device "+name, driver.KindUnexpected)
			return
		}
		d.m.Lock()
		defer d.m.Unlock()
		fn(w, r, d)
	}
}

func (s *Server) handleListDevices(w http.ResponseWriter, _ *http.Request) {
	s.md.RLock()
	infos := make([]deviceInfo, 0, len(s.devices))
	for _, d := range s.devices {
		infos = append(infos, deviceInfo{
			Name:   d.drv.Name(),
			Driver: d.cfg.Driver,
			State:  d.drv.State().String(),
		})
	}
	s.md.RUnlock()
	writeJSON(w, infos)
}

func (s *Server) open(w http.ResponseWriter, r *http.Request, d *device) {
	s.respond(w, d, "open", d.drv.Open(r.Context()), nil)
}

func (s *Server) close(w http.ResponseWriter, r *http.Request, d *device) {
	s.respond(w, d, "close", d.drv.Close(r.Context()), nil)
}

func (s *Server) alive(w http.ResponseWriter, r *http.Request, d *device) {
	writeJSON(w, map[string]bool{"alive": d.drv.IsAlive(r.Context())})
}

func (s *Server) loadConfig(w http.ResponseWriter, r *http.Request, d *device) {
	req := &loadRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error(), driver.KindUnexpected)
		return
	}
	src := &driver.Source{Filename: req.Filename, Config: req.Config}
	var err error
	op := "load-merge"
	if req.Mode == "replace" {
		op = "load-replace"
		err = d.drv.LoadReplaceCandidate(r.Context(), src)
	} else {
		err = d.drv.LoadMergeCandidate(r.Context(), src)
	}
	s.respond(w, d, op, err, nil)
}

func (s *Server) compare(w http.ResponseWriter, r *http.Request, d *device) {
	df, err := d.drv.CompareConfig(r.Context())
	s.respond(w, d, "compare", err, map[string]string{"diff": df})
}

func (s *Server) commit(w http.ResponseWriter, r *http.Request, d *device) {
	s.respond(w, d, "commit", d.drv.CommitConfig(r.Context()), nil)
}

func (s *Server) discard(w http.ResponseWriter, r *http.Request, d *device) {
	s.respond(w, d, "discard", d.drv.DiscardConfig(r.Context()), nil)
}

func (s *Server) rollback(w http.ResponseWriter, r *http.Request, d *device) {
	s.respond(w, d, "rollback", d.drv.Rollback(r.Context()), nil)
}

func (s *Server) cli(w http.ResponseWriter, r *http.Request, d *device) {
	req := &cliRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error(), driver.KindUnexpected)
		return
	}
	res, err := d.drv.CLI(r.Context(), req.Commands)
	if err != nil {
		s.respond(w, d, "cli", err, nil)
		return
	}
	s.respond(w, d, "cli", nil, res.All())
}

// handleBulkConfig stages and commits the same config on every device in a
// scoped session, fanned out across devices.
func (s *Server) handleBulkConfig(w http.ResponseWriter, r *http.Request) {
	req := &loadRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error(), driver.KindUnexpected)
		return
	}
	src := &driver.Source{Filename: req.Filename, Config: req.Config}
	replace := req.Mode == "replace"

	s.md.RLock()
	devs := make([]*device, 0, len(s.devices))
	for _, d := range s.devices {
		devs = append(devs, d)
	}
	s.md.RUnlock()

	results := make(map[string]string, len(devs))
	rm := &sync.Mutex{}
	g, ctx := errgroup.WithContext(r.Context())
	for _, d := range devs {
		d := d
		g.Go(func() error {
			d.m.Lock()
			defer d.m.Unlock()
			err := driver.WithSession(ctx, d.drv, func(ctx context.Context, drv driver.Driver) error {
				var lerr error
				if replace {
					lerr = drv.LoadReplaceCandidate(ctx, src)
				} else {
					lerr = drv.LoadMergeCandidate(ctx, src)
				}
				if lerr != nil {
					return lerr
				}
				return drv.CommitConfig(ctx)
			})
			s.count(d.drv.Name(), "bulk-config", err)
			rm.Lock()
			defer rm.Unlock()
			if err != nil {
				results[d.drv.Name()] = err.Error()
				return err
			}
			results[d.drv.Name()] = "committed"
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		log.Errorf("bulk config apply failed: %v", err)
		w.WriteHeader(statusOf(err))
	}
	writeJSON(w, results)
}

func (s *Server) respond(w http.ResponseWriter, d *device, op string, err error, body any) {
	s.count(d.drv.Name(), op, err)
	if err != nil {
		writeErr(w, statusOf(err), err.Error(), driver.KindOf(err))
		return
	}
	if body == nil {
		body = map[string]string{"result": "ok"}
	}
	writeJSON(w, body)
}

func (s *Server) count(dev, op string, err error) {
	status := "ok"
	if err != nil {
		status = driver.KindOf(err).String()
	}
	s.opsTotal.WithLabelValues(dev, op, status).Inc()
}

func statusOf(err error) int {
	switch driver.KindOf(err) {
	case driver.KindNotConnected, driver.KindNoCandidate:
		return http.StatusConflict
	case driver.KindNotSupported:
		return http.StatusNotImplemented
	case driver.KindConnection:
		return http.StatusBadGateway
	case driver.KindLoadConfig:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("failed to write response: %v", err)
	}
}

func writeErr(w http.ResponseWriter, code int, msg string, kind driver.Kind) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errResponse{Error: msg, Kind: kind.String()})
}
