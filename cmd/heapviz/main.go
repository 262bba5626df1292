// SPDX-License-Identifier: MIT

// Command heapviz runs an operation script against one lvheap structure and
// replays every recorded step.
//
//	heapviz -structure fibonacci -ops "insert 5; insert 3; insert 7; extract"
//	heapviz -structure twothree -random 30 -seed 4 -interval 200ms
//	heapviz -config scenario.toml -log-level debug
//
// Steps are printed to stdout and logged through zap; the final snapshot is
// printed as an indented outline.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/replay"
	"github.com/katalvlaran/lvheap/session"
	"github.com/katalvlaran/lvheap/workload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "heapviz:", err)
		os.Exit(1)
	}
}

// newLogger builds a development-style zap logger writing to w.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("heapviz: log level: %w", err)
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// 1) Configuration and logging.
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	// 2) Script: explicit commands, then generated ones.
	cmds, err := parseScript(cfg.Ops)
	if err != nil {
		return err
	}
	if cfg.Random > 0 {
		ops, err := workload.Generate(cfg.Random, workload.WithSeed(cfg.Seed))
		if err != nil {
			return err
		}
		cmds = append(cmds, fromWorkload(ops)...)
	}

	// 3) Structure, session and player.
	q, err := newQueue(cfg)
	if err != nil {
		return err
	}
	sess, err := session.New(q, session.WithLogger(logger), session.WithValidation(true))
	if err != nil {
		return err
	}
	player, err := replay.New(replay.WithInterval(cfg.Interval.Duration))
	if err != nil {
		return err
	}
	logger.Info("run started",
		zap.String("structure", cfg.Structure),
		zap.Int("commands", len(cmds)),
		zap.Duration("interval", player.Interval()))

	// 4) Execute and replay.
	for _, c := range cmds {
		v, err := execute(sess, c)
		if err != nil {
			if !recoverable(err) {
				return err
			}
			fmt.Fprintf(stdout, "%s: %v\n", c, err)
			continue
		}
		if v.Op == session.OpPeekMin {
			fmt.Fprintf(stdout, "peek = %d\n", v.Value)
			continue
		}
		fmt.Fprintf(stdout, "v%d %s %d (%d steps)\n", v.Seq, v.Op, v.Value, len(v.Trace))
		if err := playback(ctx, sess, player, logger, v, stdout); err != nil {
			return err
		}
	}

	fmt.Fprint(stdout, sess.Current().Snapshot)

	return nil
}

func execute(sess *session.Session, c command) (session.Version, error) {
	switch c.op {
	case session.OpInsert:
		return sess.InsertInput(c.raw)
	case session.OpExtractMin:
		return sess.ExtractMin()
	default:
		return sess.PeekMin()
	}
}

// playback replays v.Trace while holding the session's playback mark.
func playback(ctx context.Context, sess *session.Session, p *replay.Player, logger *zap.Logger, v session.Version, w io.Writer) error {
	if err := sess.BeginPlayback(); err != nil {
		return err
	}
	defer sess.EndPlayback()

	return p.Play(ctx, v.Trace, func(i int, s core.Step) error {
		logger.Debug("step",
			zap.Uint64("seq", v.Seq),
			zap.Int("index", i),
			zap.Stringer("kind", s.Kind),
			zap.String("action", string(s.Action)),
			zap.Ints("values", s.Values))
		_, err := fmt.Fprintf(w, "  %s\n", s)
		return err
	})
}
