//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"context"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/lnch"
	"github.com/e-gun/CatalogTopicMiner/internal/pipe"
	"github.com/e-gun/CatalogTopicMiner/internal/rpt"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/e-gun/CatalogTopicMiner/internal/vlt"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"strings"
	"sync"
)

var (
	Msg      = lnch.Msg
	poolonce sync.Once
)

// RunFunc - something that turns a configuration into a report; pipe.Run outside of tests
type RunFunc func(ctx context.Context, cfg str.CurrentConfiguration, progress pipe.Progress) (*rpt.Report, error)

// Server - the reports this process has built and the runs it is building
type Server struct {
	Cfg     str.CurrentConfiguration
	Runs    *vlt.RunVault
	Stats   *vlt.EchoResponseStats
	Pool    *vlt.WSPool
	Runner  RunFunc
	reports map[string]*rpt.Report
	order   []string
	mtx     sync.RWMutex
}

// NewServer - serve 'first' (which may be nil) until a new run replaces it
func NewServer(cfg str.CurrentConfiguration, first *rpt.Report) *Server {
	s := &Server{
		Cfg:     cfg,
		Runs:    vlt.AllRuns,
		Stats:   vlt.EchoServerStats,
		Pool:    vlt.WebsocketPool,
		Runner:  pipe.Run,
		reports: make(map[string]*rpt.Report),
	}
	poolonce.Do(func() { go vlt.WebsocketPool.WSPoolStartListening() })
	if first != nil {
		s.Keep(first)
	}
	return s
}

// Keep - store a finished report; the newest is the one "/" shows
func (s *Server) Keep(r *rpt.Report) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if _, ok := s.reports[r.RunID]; !ok {
		s.order = append(s.order, r.RunID)
	}
	s.reports[r.RunID] = r
	for len(s.order) > vv.MAXRUNSKEPT {
		delete(s.reports, s.order[0])
		s.order = s.order[1:]
	}
}

// Report - by run id; "" means the newest
func (s *Server) Report(id string) (*rpt.Report, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	if id == "" {
		if len(s.order) == 0 {
			return nil, false
		}
		id = s.order[len(s.order)-1]
	}
	r, ok := s.reports[id]
	return r, ok
}

// BuildEcho - the router with its middleware
func (s *Server) BuildEcho() *echo.Echo {
	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "${remote_ip}\t${custom}\t${status}\t${bytes_out}\t${uri}\n"
	)

	// ctf - a CustomTagFunc return a short user agent
	ctf := func(c echo.Context, buf *bytes.Buffer) (int, error) {
		ua := strings.Split(c.Request().UserAgent(), " ")
		if len(ua) == 0 {
			return 0, nil
		}
		last := ua[len(ua)-1]
		buf.Write([]byte(last))
		return 1, nil
	}

	e := echo.New()
	e.Server.ReadTimeout = vv.TIMEOUTRD

	switch s.Cfg.EchoLog {
	case 3:
		e.Use(middleware.Logger())
	case 2:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT, CustomTagFunc: ctf}))
	case 1:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	default:
		// do nothing
	}

	e.Use(vlt.CountResponses(s.Stats))
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(vv.MAXECHOREQPERSECONDPERIP)))
	e.Use(middleware.Recover())

	if s.Cfg.Gzip {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
	}

	//
	// [a] the report ("rt-report.go")
	//

	e.GET("/", s.RtReport)               // "u: /?id=4b3e..."
	e.GET("/section/:name", s.RtSection) // "u: /section/topicterms?id=4b3e..."
	e.GET("/json/:table", s.RtJSON)      // "u: /json/gamma"
	e.GET("/json/", s.RtJSONIndex)       // the table names

	//
	// [b] runs ("rt-run.go")
	//

	e.POST("/run", s.RtRun) // "u: /run?topics=16&seed=99"
	e.GET("/run", s.RtRun)
	e.GET("/status/:id", s.RtStatus) // "u: /status/4b3e..."
	e.GET("/cancel/:id", s.RtCancel)
	e.GET("/stats", s.RtStats)

	//
	// [c] websocket ("rt-websocket.go")
	//

	e.GET("/ws", s.RtWebsocket)

	e.HideBanner = true
	e.HidePort = false
	e.Debug = false
	e.DisableHTTP2 = true
	return e
}

// StartEchoServer - start serving; this blocks and does not return while the program remains alive
func StartEchoServer(s *Server) {
	const (
		MSG1 = "serving the report at http://%s:%d/"
	)
	e := s.BuildEcho()
	Msg.MAND(fmt.Sprintf(MSG1, s.Cfg.HostIP, s.Cfg.HostPort))
	e.Logger.Fatal(e.Start(fmt.Sprintf("%s:%d", s.Cfg.HostIP, s.Cfg.HostPort)))
}
