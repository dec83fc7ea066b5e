// Copyright 2024 The go-chainspec Authors
// This file is part of the go-chainspec library.
//
// The go-chainspec library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-chainspec library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-chainspec library. If not, see <http://www.gnu.org/licenses/>.

// Package testlog provides a log handler for unit tests.
package testlog

import (
	"sync"

	"github.com/openethereum/go-chainspec/log"
)

// T is the subset of testing.TB used by the test logger.
type T interface {
	Helper()
	Logf(format string, args ...any)
}

// Handler returns a log handler which logs to the unit test log of t.
func Handler(t T, level log.Lvl) log.Handler {
	return log.LvlFilterHandler(level, &handler{t, log.TerminalFormat(false)})
}

type handler struct {
	t   T
	fmt log.Format
}

func (h *handler) Log(r *log.Record) error {
	h.t.Logf("%s", h.fmt.Format(r))
	return nil
}

// Logger returns a logger which logs to the unit test log of t.
func Logger(t T, level log.Lvl) log.Logger {
	l := log.New()
	l.SetHandler(Handler(t, level))
	return l
}

// Capture is a log handler which keeps every record it receives so that
// tests can assert on emitted diagnostics.
type Capture struct {
	mu      sync.Mutex
	records []*log.Record
}

// CaptureLogger returns a logger whose records are both written to the unit
// test log of t and collected by the returned Capture. The level filters
// only the test log output; the capture sees everything.
func CaptureLogger(t T, level log.Lvl) (log.Logger, *Capture) {
	c := new(Capture)
	l := log.New()
	l.SetHandler(log.MultiHandler(c, Handler(t, level)))
	return l, c
}

func (c *Capture) Log(r *log.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, r)
	return nil
}

// Records returns the collected records in the order they were written.
func (c *Capture) Records() []*log.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*log.Record(nil), c.records...)
}

// Messages returns the messages of all collected records at the given level.
func (c *Capture) Messages(level log.Lvl) []string {
	var msgs []string
	for _, r := range c.Records() {
		if r.Lvl == level {
			msgs = append(msgs, r.Msg)
		}
	}
	return msgs
}

// Value returns the context value stored under key in r, if any.
func Value(r *log.Record, key string) (interface{}, bool) {
	for i := 0; i+1 < len(r.Ctx); i += 2 {
		if k, ok := r.Ctx[i].(string); ok && k == key {
			return r.Ctx[i+1], true
		}
	}
	return nil, false
}
