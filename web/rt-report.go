//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/gen"
	"github.com/e-gun/CatalogTopicMiner/internal/rpt"
	"github.com/labstack/echo/v4"
	"net/http"
)

var ErrNoReport = errors.New("no report has been built yet")

const (
	NOREPORTPAGE = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body>
<p>%s</p>
<p>Start one with <code>POST /run</code> and follow it at <code>/status/{id}</code>.</p>
</body>
</html>
`
)

// whichreport - the report named by "?id=" or the newest one
func (s *Server) whichreport(c echo.Context) (*rpt.Report, error) {
	id := c.QueryParam("id")
	r, ok := s.Report(id)
	if !ok {
		if id != "" {
			return nil, fmt.Errorf("%w: '%s'", ErrNoReport, id)
		}
		return nil, ErrNoReport
	}
	return r, nil
}

// RtReport - the whole page
func (s *Server) RtReport(c echo.Context) error {
	r, err := s.whichreport(c)
	if err != nil {
		if c.QueryParam("id") != "" {
			return gen.JSONerror(c, http.StatusNotFound, err)
		}
		return c.HTML(http.StatusOK, fmt.Sprintf(NOREPORTPAGE, s.Cfg.CatalogURL, err.Error()))
	}

	var buf bytes.Buffer
	if err = rpt.Render(&buf, r); err != nil {
		Msg.EF(err, "RtReport()")
		return gen.JSONerror(c, http.StatusInternalServerError, err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// RtSection - one section as an html+js fragment
func (s *Server) RtSection(c echo.Context) error {
	r, err := s.whichreport(c)
	if err != nil {
		return gen.JSONerror(c, http.StatusNotFound, err)
	}

	frag, err := rpt.RenderSection(c.Param("name"), r)
	switch {
	case errors.Is(err, rpt.ErrNoSuchSection):
		return gen.JSONerror(c, http.StatusNotFound, err)
	case err != nil:
		Msg.EF(err, "RtSection()")
		return gen.JSONerror(c, http.StatusInternalServerError, err)
	}
	return c.HTML(http.StatusOK, frag)
}

// RtJSON - one tidy table
func (s *Server) RtJSON(c echo.Context) error {
	r, err := s.whichreport(c)
	if err != nil {
		return gen.JSONerror(c, http.StatusNotFound, err)
	}

	var buf bytes.Buffer
	err = r.WriteTable(&buf, c.Param("table"))
	switch {
	case errors.Is(err, rpt.ErrNoSuchTable):
		return gen.JSONerror(c, http.StatusNotFound, err)
	case err != nil:
		return gen.JSONerror(c, http.StatusInternalServerError, err)
	}
	return c.JSONBlob(http.StatusOK, buf.Bytes())
}

// RtJSONIndex - the names "/json/:table" accepts
func (s *Server) RtJSONIndex(c echo.Context) error {
	r, err := s.whichreport(c)
	if err != nil {
		return gen.JSONerror(c, http.StatusNotFound, err)
	}
	return gen.JSONresponse(c, r.TableNames())
}
