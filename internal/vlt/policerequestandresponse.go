//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"sync"
)

//
// RESPONSE COUNTING
//

type EchoResponseStats struct {
	TwoHundred  uint64
	FourOhFour  uint64
	FourOhFive  uint64
	FiveHundred uint64
	Other       uint64
	mtx         sync.Mutex
}

// NewEchoResponseStats - the counters start at zero
func NewEchoResponseStats() *EchoResponseStats {
	return &EchoResponseStats{}
}

// Register - count one response; the error counts get logged every so often
func (s *EchoResponseStats) Register(code int, uri string) {
	const (
		FYI200 = `StatusOK count is %d`
		FRQ200 = 1000
		FYI404 = `StatusNotFound count is %d; last was "%s"`
		FRQ404 = 100
		FYI405 = `MethodNotAllowed count is %d; last was "%s"`
		FRQ405 = 5
		FYI500 = `StatusInternalServerError count is %d; last was "%s"`
		FRQ500 = 1
	)

	s.mtx.Lock()
	defer s.mtx.Unlock()

	warn := func(v uint64, frq uint64, fyi string) {
		if v%frq == 0 {
			Msg.NOTE(fmt.Sprintf(fyi, v, uri))
		}
	}

	switch code {
	case 200:
		s.TwoHundred++
		if s.TwoHundred%FRQ200 == 0 {
			Msg.NOTE(fmt.Sprintf(FYI200, s.TwoHundred))
		}
	case 404:
		s.FourOhFour++
		warn(s.FourOhFour, FRQ404, FYI404)
	case 405:
		s.FourOhFive++
		warn(s.FourOhFive, FRQ405, FYI405)
	case 500:
		s.FiveHundred++
		warn(s.FiveHundred, FRQ500, FYI500)
	default:
		// 101 from "/ws", 202 from "/run", ...
		s.Other++
	}
}

// Snapshot - a copy of the counters
func (s *EchoResponseStats) Snapshot() map[string]uint64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return map[string]uint64{
		"200":   s.TwoHundred,
		"404":   s.FourOhFour,
		"405":   s.FourOhFive,
		"500":   s.FiveHundred,
		"other": s.Other,
	}
}

// CountResponses - custom middleware for an *echo.Echo that feeds an EchoResponseStats
func CountResponses(stats *EchoResponseStats) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// do this before reading c.Response().Status or you will always get "200"
			if err := next(c); err != nil {
				c.Error(err)
			}
			stats.Register(c.Response().Status, c.Request().RequestURI)
			return nil
		}
	}
}
