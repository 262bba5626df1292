// SPDX-License-Identifier: MIT
// Package: lvheap/cmd/heapviz
//
// script.go — parsing of -ops scripts into commands.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/session"
	"github.com/katalvlaran/lvheap/workload"
)

// errScript reports a malformed -ops script.
var errScript = errors.New("heapviz: bad script")

// command is one parsed script entry.
type command struct {
	op  session.Op
	raw string // insert argument as written; parsed by the session
}

func (c command) String() string {
	if c.op == session.OpInsert {
		return fmt.Sprintf("%s %s", c.op, c.raw)
	}

	return string(c.op)
}

// parseScript splits s on ';' and newlines into commands:
//
//	insert <int> | extract | peek
//
// Blank entries and '#' comments are skipped. The insert argument is kept
// raw so that a non-integer surfaces as core.ErrInvalidInput at run time.
func parseScript(s string) ([]command, error) {
	var out []command
	entries := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' })
	for i, e := range entries {
		if j := strings.IndexByte(e, '#'); j >= 0 {
			e = e[:j]
		}
		f := strings.Fields(e)
		if len(f) == 0 {
			continue
		}
		switch strings.ToLower(f[0]) {
		case "insert", "push":
			if len(f) > 2 {
				return nil, fmt.Errorf("%w: entry %d: insert takes one value, got %q", errScript, i+1, e)
			}
			raw := ""
			if len(f) == 2 {
				raw = f[1]
			}
			out = append(out, command{op: session.OpInsert, raw: raw})
		case "extract", "extract-min", "pop":
			out = append(out, command{op: session.OpExtractMin})
		case "peek":
			out = append(out, command{op: session.OpPeekMin})
		default:
			return nil, fmt.Errorf("%w: entry %d: unknown command %q", errScript, i+1, f[0])
		}
	}

	return out, nil
}

// fromWorkload converts generated ops into script commands.
func fromWorkload(ops []workload.Op) []command {
	out := make([]command, 0, len(ops))
	for _, op := range ops {
		switch op.Kind {
		case workload.Insert:
			out = append(out, command{op: session.OpInsert, raw: fmt.Sprint(op.Value)})
		case workload.ExtractMin:
			out = append(out, command{op: session.OpExtractMin})
		}
	}

	return out
}

// recoverable reports errors that end one command but not the run.
func recoverable(err error) bool {
	return errors.Is(err, core.ErrEmpty) ||
		errors.Is(err, core.ErrCapacityExceeded) ||
		errors.Is(err, core.ErrInvalidInput)
}
