//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"strings"
	"sync"
	"time"
)

//
// THREAD SAFE INFRASTRUCTURE: MUTEX
//

// RunInfo - where a pipeline run has got to
type RunInfo struct {
	ID        string             `json:"id"`
	Exists    bool               `json:"exists"`
	Stage     string             `json:"stage"`
	Msg       string             `json:"message"`
	Elapsed   string             `json:"elapsed"`
	Done      bool               `json:"done"`
	Err       string             `json:"error,omitempty"`
	Launched  time.Time          `json:"launched"`
	Finished  time.Time          `json:"-"`
	CancelFnc context.CancelFunc `json:"-"`
}

// RunVault - all the runs this process knows about; finished runs beyond the limit are forgotten oldest first
type RunVault struct {
	RunMap map[string]RunInfo
	order  []string
	keep   int
	mutex  sync.RWMutex
}

// MakeRunVault - keep at most 'keep' finished runs
func MakeRunVault(keep int) *RunVault {
	return &RunVault{
		RunMap: make(map[string]RunInfo),
		keep:   max(keep, 1),
	}
}

// NewRunID - a uuid without the dashes
func NewRunID() string {
	return strings.Replace(uuid.New().String(), "-", "", -1)
}

// Launch - register a new run and return its id
func (rv *RunVault) Launch(cancel context.CancelFunc) string {
	id := NewRunID()
	rv.Insert(RunInfo{ID: id, Exists: true, Stage: "queued", Launched: time.Now(), CancelFnc: cancel})
	return id
}

// LaunchBelow - Launch, but only while fewer than 'limit' runs are unfinished
func (rv *RunVault) LaunchBelow(cancel context.CancelFunc, limit int) (string, bool) {
	rv.mutex.Lock()
	defer rv.mutex.Unlock()
	if rv.active() >= limit {
		return "", false
	}
	id := NewRunID()
	rv.insert(RunInfo{ID: id, Stage: "queued", Launched: time.Now(), CancelFnc: cancel})
	return id, true
}

func (rv *RunVault) Insert(ri RunInfo) {
	rv.mutex.Lock()
	defer rv.mutex.Unlock()
	rv.insert(ri)
}

// insert - caller holds the lock
func (rv *RunVault) insert(ri RunInfo) {
	ri.Exists = true
	if _, ok := rv.RunMap[ri.ID]; !ok {
		rv.order = append(rv.order, ri.ID)
	}
	rv.RunMap[ri.ID] = ri
	rv.prune()
}

// prune - caller holds the lock
func (rv *RunVault) prune() {
	var done []string
	for _, id := range rv.order {
		if rv.RunMap[id].Done {
			done = append(done, id)
		}
	}
	if len(done) <= rv.keep {
		return
	}
	drop := make(map[string]bool)
	for _, id := range done[:len(done)-rv.keep] {
		drop[id] = true
		delete(rv.RunMap, id)
	}
	kept := rv.order[:0]
	for _, id := range rv.order {
		if !drop[id] {
			kept = append(kept, id)
		}
	}
	rv.order = kept
}

// SetStage - note the stage a run has entered
func (rv *RunVault) SetStage(id string, stage string, msg string) {
	rv.mutex.Lock()
	defer rv.mutex.Unlock()
	ri, ok := rv.RunMap[id]
	if !ok || ri.Done {
		return
	}
	ri.Stage = stage
	ri.Msg = msg
	rv.RunMap[id] = ri
}

// Reporter - SetStage bound to one run
func (rv *RunVault) Reporter(id string) func(stage string, msg string) {
	return func(stage string, msg string) {
		rv.SetStage(id, stage, msg)
	}
}

// Finish - mark a run as done; a nil error means it succeeded
func (rv *RunVault) Finish(id string, err error) {
	rv.mutex.Lock()
	defer rv.mutex.Unlock()
	ri, ok := rv.RunMap[id]
	if !ok {
		return
	}
	ri.Done = true
	ri.Finished = time.Now()
	if err != nil {
		ri.Err = err.Error()
		ri.Msg = "failed"
	} else {
		ri.Stage = "done"
		ri.Msg = "finished"
	}
	rv.RunMap[id] = ri
	rv.prune()
}

// Cancel - stop a run that is still going; false if there was nothing to stop
func (rv *RunVault) Cancel(id string) bool {
	const (
		CANC = "RunVault.Cancel() reports that '%s' was cancelled"
	)
	rv.mutex.RLock()
	ri, ok := rv.RunMap[id]
	rv.mutex.RUnlock()
	if !ok || ri.Done || ri.CancelFnc == nil {
		return false
	}
	ri.CancelFnc()
	Msg.PEEK(fmt.Sprintf(CANC, id))
	return true
}

func (rv *RunVault) IsInVault(id string) bool {
	rv.mutex.RLock()
	defer rv.mutex.RUnlock()
	_, b := rv.RunMap[id]
	return b
}

// GetRun - a copy of the RunInfo with Elapsed filled in; Exists is false for unknown ids
func (rv *RunVault) GetRun(id string) RunInfo {
	rv.mutex.RLock()
	defer rv.mutex.RUnlock()
	ri, ok := rv.RunMap[id]
	if !ok {
		return RunInfo{ID: id, Exists: false}
	}
	end := time.Now()
	if ri.Done {
		end = ri.Finished
	}
	ri.Elapsed = fmt.Sprintf("%.1fs", end.Sub(ri.Launched).Seconds())
	return ri
}

// Active - how many runs have not finished
func (rv *RunVault) Active() int {
	rv.mutex.RLock()
	defer rv.mutex.RUnlock()
	return rv.active()
}

func (rv *RunVault) active() int {
	n := 0
	for _, ri := range rv.RunMap {
		if !ri.Done {
			n++
		}
	}
	return n
}
