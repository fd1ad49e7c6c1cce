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

// Package server exposes a set of configured devices over a small HTTP/JSON
// API. It is the session owner: every device driver is guarded by a mutex so
// the contract's single-workflow ownership rule holds per device, while
// different devices are served concurrently.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/iptecharch/netdriver/pkg/config"
	"github.com/iptecharch/netdriver/pkg/driver"
)

type Server struct {
	config *config.Config

	md      *sync.RWMutex
	devices map[string]*device

	router *mux.Router
	reg    *prometheus.Registry
	srv    *http.Server

	opsTotal *prometheus.CounterVec
}

// device pairs a driver with the mutex serializing access to it.
type device struct {
	m   *sync.Mutex
	drv driver.Driver
	cfg *config.DeviceConfig
}

func NewServer(ctx context.Context, c *config.Config) (*Server, error) {
	s := &Server{
		config:  c,
		md:      &sync.RWMutex{},
		devices: make(map[string]*device, len(c.Devices)),
		router:  mux.NewRouter(),
		reg:     prometheus.NewRegistry(),
	}

	for _, dc := range c.Devices {
		drv, err := driver.New(ctx, dc)
		if err != nil {
			return nil, err
		}
		s.devices[dc.Name] = &device{
			m:   &sync.Mutex{},
			drv: drv,
			cfg: dc,
		}
		log.Infof("registered device %s (%s)", dc.Name, dc.Driver)
	}

	s.registerMetrics()
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerMetrics() {
	s.opsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "netdriver_operations_total",
		Help: "Number of driver operations executed, by device, operation and status.",
	}, []string{"device", "operation", "status"})
	s.reg.MustRegister(s.opsTotal)
	s.reg.MustRegister(collectors.NewGoCollector())
	s.reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/devices", s.handleListDevices).Methods(http.MethodGet)
	s.router.HandleFunc("/devices/config", s.handleBulkConfig).Methods(http.MethodPost)
	s.router.HandleFunc("/devices/{device}/open", s.deviceHandler(s.open)).Methods(http.MethodPost)
	s.router.HandleFunc("/devices/{device}/close", s.deviceHandler(s.close)).Methods(http.MethodPost)
	s.router.HandleFunc("/devices/{device}/alive", s.deviceHandler(s.alive)).Methods(http.MethodGet)
	s.router.HandleFunc("/devices/{device}/config", s.deviceHandler(s.loadConfig)).Methods(http.MethodPost)
	s.router.HandleFunc("/devices/{device}/diff", s.deviceHandler(s.compare)).Methods(http.MethodGet)
	s.router.HandleFunc("/devices/{device}/commit", s.deviceHandler(s.commit)).Methods(http.MethodPost)
	s.router.HandleFunc("/devices/{device}/discard", s.deviceHandler(s.discard)).Methods(http.MethodPost)
	s.router.HandleFunc("/devices/{device}/rollback", s.deviceHandler(s.rollback)).Methods(http.MethodPost)
	s.router.HandleFunc("/devices/{device}/cli", s.deviceHandler(s.cli)).Methods(http.MethodPost)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))
}

func (s *Server) Serve(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:              s.config.HTTPServer.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(sctx)
	}()
	log.Infof("http server listening on %s", s.config.HTTPServer.Address)
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Stop() {
	if s.srv != nil {
		_ = s.srv.Close()
	}
	s.md.RLock()
	defer s.md.RUnlock()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, d := range s.devices {
		d.m.Lock()
		if err := d.drv.Close(ctx); err != nil {
			log.Errorf("failed to close device %s: %v", d.drv.Name(), err)
		}
		d.m.Unlock()
	}
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler { return s.router }
