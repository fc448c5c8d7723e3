//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"context"
	"errors"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/gen"
	"github.com/e-gun/CatalogTopicMiner/internal/lnch"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"github.com/labstack/echo/v4"
	"net/http"
	"strconv"
)

var (
	ErrBusy      = errors.New("a run is already in progress")
	ErrNoSuchRun = errors.New("no such run")
)

// runconfig - the server's configuration with the query's overrides
func (s *Server) runconfig(c echo.Context) (str.CurrentConfiguration, error) {
	const (
		FAIL1 = "'%s' is not a number: %s"
	)

	cfg := s.Cfg
	cfg.Serve = false

	ints := map[string]*int{
		"topics":     &cfg.LdaTopics,
		"seed":       &cfg.LdaSeed,
		"iterations": &cfg.LdaIterations,
		"topn":       &cfg.TopN,
	}
	for k, p := range ints {
		v := c.QueryParam(k)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf(FAIL1, k, v)
		}
		*p = n
	}

	if v := c.QueryParam("sweep"); v != "" {
		cfg.LdaSweep = gen.SplitCSVInts(v)
	}
	if v := c.QueryParam("keywords"); v != "" {
		cfg.TfIdfKeywords = gen.SplitCSV(v)
	}
	if c.QueryParam("refetch") != "" {
		cfg.Refetch = true
	}
	lnch.BoundModelSettings(&cfg)
	return cfg, nil
}

// RtRun - start a run in the background and hand back its id
func (s *Server) RtRun(c echo.Context) error {
	const (
		MSG1 = "RtRun(): launched %s"
		MSG2 = "RtRun(): %s failed: %s"
	)

	cfg, err := s.runconfig(c)
	if err != nil {
		return gen.JSONerror(c, http.StatusBadRequest, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	id, ok := s.Runs.LaunchBelow(cancel, vv.MAXACTIVERUNS)
	if !ok {
		cancel()
		return gen.JSONerror(c, http.StatusConflict, ErrBusy)
	}
	Msg.PEEK(fmt.Sprintf(MSG1, id))

	go func() {
		defer cancel()
		r, e := s.Runner(ctx, cfg, s.Runs.Reporter(id))
		if e == nil {
			r.RunID = id
			s.Keep(r)
		} else {
			Msg.WARN(fmt.Sprintf(MSG2, id, e.Error()))
		}
		s.Runs.Finish(id, e)
	}()

	return c.JSON(http.StatusAccepted, map[string]string{"id": id})
}

// RtStatus - progress of one run
func (s *Server) RtStatus(c echo.Context) error {
	ri := s.Runs.GetRun(c.Param("id"))
	if !ri.Exists {
		return gen.JSONerror(c, http.StatusNotFound, fmt.Errorf("%w: '%s'", ErrNoSuchRun, c.Param("id")))
	}
	return gen.JSONresponse(c, ri)
}

// RtCancel - stop a run that is still going
func (s *Server) RtCancel(c echo.Context) error {
	id := c.Param("id")
	if !s.Runs.Cancel(id) {
		return gen.JSONerror(c, http.StatusNotFound, fmt.Errorf("%w: '%s'", ErrNoSuchRun, id))
	}
	return gen.JSONresponse(c, map[string]string{"cancelled": id})
}

// RtStats - response counts since launch
func (s *Server) RtStats(c echo.Context) error {
	return gen.JSONresponse(c, s.Stats.Snapshot())
}
