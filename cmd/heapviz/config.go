// SPDX-License-Identifier: MIT
// Package: lvheap/cmd/heapviz
//
// config.go — defaults, TOML file and flag resolution.

package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvheap/binaryheap"
	"github.com/katalvlaran/lvheap/binomial"
	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/fibonacci"
	"github.com/katalvlaran/lvheap/twothree"
)

// keepDefault leaves the structure's own DefaultCapacity in place.
const keepDefault = -1

// duration decodes TOML strings such as "250ms".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v

	return nil
}

// config is the resolved run configuration. A TOML file may set any field;
// flags given explicitly on the command line win over the file.
//
//	structure = "fibonacci"
//	ops       = "insert 5; insert 3; extract"
//	initial   = [3, 9, 8, 12, 15]
//	random    = 20
//	seed      = 7
//	interval  = "0s"
//	capacity  = 0
//	log_level = "debug"
type config struct {
	Structure string   `toml:"structure"`
	Ops       string   `toml:"ops"`
	Initial   []int    `toml:"initial"`
	Random    int      `toml:"random"`
	Seed      int64    `toml:"seed"`
	Interval  duration `toml:"interval"`
	Capacity  int      `toml:"capacity"`
	LogLevel  string   `toml:"log_level"`
}

func defaultConfig() config {
	return config{
		Structure: binaryheap.Name,
		Seed:      1,
		Interval:  duration{0},
		Capacity:  keepDefault,
		LogLevel:  "info",
	}
}

// loadConfig resolves defaults, then the -config file, then explicit flags.
func loadConfig(args []string) (config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("heapviz", flag.ContinueOnError)
	var (
		file      = fs.String("config", "", "TOML file with run settings")
		structure = fs.String("structure", cfg.Structure, "binary | binomial | fibonacci | twothree")
		ops       = fs.String("ops", "", `script, e.g. "insert 5; insert 3; extract; peek"`)
		random    = fs.Int("random", 0, "append N generated operations")
		seed      = fs.Int64("seed", cfg.Seed, "seed for -random")
		interval  = fs.Duration("interval", cfg.Interval.Duration, "pause between replayed steps")
		capacity  = fs.Int("capacity", cfg.Capacity, "cap (0 = unbounded, -1 = structure default)")
		logLevel  = fs.String("log-level", cfg.LogLevel, "debug | info | warn | error")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if *file != "" {
		if _, err := toml.DecodeFile(*file, &cfg); err != nil {
			return config{}, fmt.Errorf("heapviz: config %s: %w", *file, err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "structure":
			cfg.Structure = *structure
		case "ops":
			cfg.Ops = *ops
		case "random":
			cfg.Random = *random
		case "seed":
			cfg.Seed = *seed
		case "interval":
			cfg.Interval = duration{*interval}
		case "capacity":
			cfg.Capacity = *capacity
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	return cfg, nil
}

// newQueue builds the configured structure, seeding it with cfg.Initial.
func newQueue(cfg config) (core.PriorityQueue, error) {
	var opts []core.Option
	if cfg.Capacity != keepDefault {
		opts = append(opts, core.WithCapacity(cfg.Capacity))
	}

	var q core.PriorityQueue
	switch cfg.Structure {
	case binaryheap.Name:
		// Array contents are heapified in one pass, without per-insert traces.
		h, err := binaryheap.NewFromSlice(cfg.Initial, opts...)
		if err != nil {
			return nil, fmt.Errorf("heapviz: initial values: %w", err)
		}
		return h, nil
	case binomial.Name:
		q = binomial.New(opts...)
	case fibonacci.Name:
		q = fibonacci.New(opts...)
	case twothree.Name, "2-3":
		q = twothree.New(opts...)
	default:
		return nil, fmt.Errorf("heapviz: unknown structure %q", cfg.Structure)
	}

	for _, v := range cfg.Initial {
		if _, err := q.Insert(v); err != nil {
			return nil, fmt.Errorf("heapviz: initial value %d: %w", v, err)
		}
	}

	return q, nil
}
