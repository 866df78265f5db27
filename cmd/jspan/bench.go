package main

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/gops/agent"
	"github.com/signadot/jspan/parse"

	"github.com/scott-cotton/cli"
)

const defaultBenchN = 100

func bench(cfg *BenchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Bench.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		} else {
			defer agent.Close()
		}
	}
	n := cfg.N
	if n <= 0 {
		n = defaultBenchN
	}
	return cfg.eachInput(cc, args, func(name string, d []byte) error {
		res, err := benchInput(cfg.MainConfig, d, n)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", name, err)
		}
		return res.write(cc.Out, name)
	})
}

type benchResult struct {
	size   int
	nodes  int
	n      int
	perOp  time.Duration
	allocs uint64
	bytes  uint64
}

func benchInput(cfg *MainConfig, d []byte, n int) (*benchResult, error) {
	opts := cfg.parseOpts()
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()
	nodes := 0
	for range n {
		tree, err := parse.Parse(d, opts...)
		if err != nil {
			return nil, err
		}
		nodes = tree.Len()
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)
	return &benchResult{
		size:   len(d),
		nodes:  nodes,
		n:      n,
		perOp:  elapsed / time.Duration(n),
		allocs: (after.Mallocs - before.Mallocs) / uint64(n),
		bytes:  (after.TotalAlloc - before.TotalAlloc) / uint64(n),
	}, nil
}

func (r *benchResult) throughput() uint64 {
	if r.perOp <= 0 {
		return 0
	}
	return uint64(float64(r.size) / r.perOp.Seconds())
}

func (r *benchResult) write(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "%s: %s, %s nodes, %d runs: %s/op %s/s, %s allocs/op %s/op\n",
		name,
		humanize.Bytes(uint64(r.size)),
		humanize.Comma(int64(r.nodes)),
		r.n,
		r.perOp,
		humanize.Bytes(r.throughput()),
		humanize.Comma(int64(r.allocs)),
		humanize.Bytes(r.bytes))
	return err
}
