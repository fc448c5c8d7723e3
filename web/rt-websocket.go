//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"github.com/e-gun/CatalogTopicMiner/internal/vlt"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var (
	Upgrader = websocket.Upgrader{}
)

//
// THE ROUTE
//

// RtWebsocket - progress info for a run; the client sends the run id and then listens
func (s *Server) RtWebsocket(c echo.Context) error {
	const (
		FAILCON = "RtWebsocket(): ws connection failed"
	)

	ws, err := Upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		Msg.NOTE(FAILCON)
		return nil
	}
	defer ws.Close()

	progresspoll := &vlt.WSClient{
		Conn: ws,
		Pool: s.Pool,
	}

	// the pool reads the ID: set it before the client joins
	if !progresspoll.ReceiveID() {
		return nil
	}
	s.Pool.Add <- progresspoll
	progresspoll.WSMessageLoop(s.Runs)
	s.Pool.Remove <- progresspoll
	return nil
}
