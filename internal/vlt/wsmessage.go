//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"encoding/json"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"github.com/gorilla/websocket"
	"strings"
	"time"
)

//
// WEBSOCKET INFRASTRUCTURE: see https://tutorialedge.net/projects/chat-system-in-go-and-react/part-4-handling-multiple-clients/
//

type WSClient struct {
	ID   string
	Conn *websocket.Conn
	Pool *WSPool
}

type WSPool struct {
	Add       chan *WSClient
	Remove    chan *WSClient
	ClientMap map[*WSClient]bool
	JSO       chan *WSJSOut
}

// WSJSOut - one progress report; Close is "closed" on the last message of a run
type WSJSOut struct {
	V     RunInfo `json:"value"`
	ID    string  `json:"ID"`
	Close string  `json:"close"`
}

// ReceiveID - get the run id from the client; record it; then exit
func (c *WSClient) ReceiveID() bool {
	const (
		FAIL1 = `WSClient.ReceiveID() failed`
		FAIL2 = `WSClient.ReceiveID() never received the run id`
		WAIT  = 5
	)

	_ = c.Conn.SetReadDeadline(time.Now().Add(WAIT * time.Second))
	defer func() { _ = c.Conn.SetReadDeadline(time.Time{}) }()

	_, m, err := c.Conn.ReadMessage()
	if err != nil {
		Msg.FYI(FAIL1)
		return false
	}

	id := strings.TrimSpace(strings.Replace(string(m), `"`, "", -1))
	if id == "" {
		Msg.FYI(FAIL2)
		return false
	}
	c.ID = id
	return true
}

// WSMessageLoop - send the progress of the run until it finishes or vanishes
func (c *WSClient) WSMessageLoop(rv *RunVault) {
	const (
		FAIL = `WSClient.WSMessageLoop() never found '%s' in the RunVault`
	)

	for {
		ri := rv.GetRun(c.ID)
		if !ri.Exists {
			Msg.FYI(fmt.Sprintf(FAIL, c.ID))
			c.Pool.JSO <- &WSJSOut{V: ri, ID: c.ID, Close: "closed"}
			return
		}

		jso := &WSJSOut{V: ri, ID: c.ID, Close: "open"}
		if ri.Done {
			jso.Close = "closed"
		}
		c.Pool.JSO <- jso

		if ri.Done {
			return
		}
		time.Sleep(vv.WSPOLLINGPAUSE)
	}
}

// WSPoolStartListening - the WSPool will listen for activity on its various channels (only called once at launch)
func (pool *WSPool) WSPoolStartListening() {
	const (
		MSG1 = "WSPool client failed on WriteMessage()"
		MSG2 = "WSPool now has %d client(s)"
	)

	writemsg := func(jso *WSJSOut) {
		for cl := range pool.ClientMap {
			if cl.ID == jso.ID {
				js, y := json.Marshal(jso)
				Msg.EC(y)
				e := cl.Conn.WriteMessage(websocket.TextMessage, js)
				if e != nil {
					Msg.WARN(MSG1)
					delete(pool.ClientMap, cl)
				}
			}
		}
	}

	for {
		select {
		case cl := <-pool.Add:
			pool.ClientMap[cl] = true
			Msg.TMI(fmt.Sprintf(MSG2, len(pool.ClientMap)))
		case cl := <-pool.Remove:
			delete(pool.ClientMap, cl)
			Msg.TMI(fmt.Sprintf(MSG2, len(pool.ClientMap)))
		case wrt := <-pool.JSO:
			writemsg(wrt)
		}
	}
}

// WSFillNewPool - build a new WSPool
func WSFillNewPool() *WSPool {
	return &WSPool{
		Add:       make(chan *WSClient),
		Remove:    make(chan *WSClient),
		ClientMap: make(map[*WSClient]bool),
		JSO:       make(chan *WSJSOut),
	}
}
