// tree23storm hammers a 2-3 tree with a random insert storm followed by
// a random delete storm, running the structural checker along the way.
// It exercises the library the way an embedding application would and
// exits non-zero on the first invariant violation.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/treewerks/tree23"
)

func main() {
	app := cli.NewApp()
	app.Name = "tree23storm"
	app.Usage = "random insert/delete storm against a 2-3 tree"

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:  "count",
			Value: 10000,
			Usage: "number of distinct keys to insert and delete",
		},
		&cli.IntFlag{
			Name:  "max-key",
			Value: 10_000_000,
			Usage: "keys are drawn from [0, max-key)",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Value: 1,
			Usage: "seed for the key generator",
		},
		&cli.IntFlag{
			Name:  "check-every",
			Value: 1,
			Usage: "run the structural checker every N operations (0 disables per-step checks)",
		},
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "print the tree after the insert storm",
		},
	}
	app.Action = runStorm

	app.RunAndExitOnError()
}

func runStorm(cctx *cli.Context) error {
	var (
		count      = cctx.Int("count")
		maxKey     = cctx.Int("max-key")
		seed       = cctx.Int64("seed")
		checkEvery = cctx.Int("check-every")
	)
	if maxKey < count {
		return fmt.Errorf("max-key %d cannot cover %d distinct keys", maxKey, count)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	rng := rand.New(rand.NewSource(seed))
	m := tree23.New[int, int]()

	log.Info("insert storm", "count", count, "max_key", maxKey, "seed", seed)
	seen := make(map[int]struct{}, count)
	keys := make([]int, 0, count)
	for len(keys) < count {
		k := rng.Intn(maxKey)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
		m.Insert(k, k)
		if stepCheck(checkEvery, len(keys)) {
			if err := m.Check(); err != nil {
				return fmt.Errorf("after inserting %d (key %d): %w", len(keys), k, err)
			}
		}
	}
	if err := m.Check(); err != nil {
		return fmt.Errorf("after insert storm: %w", err)
	}
	if m.Len() != count {
		return fmt.Errorf("after insert storm: size %d, want %d", m.Len(), count)
	}
	log.Info("insert storm done", "size", m.Len(), "height", m.Height())

	if cctx.Bool("dump") {
		m.Dump(os.Stdout)
	}

	log.Info("delete storm", "count", count)
	deleted := 0
	for len(keys) > 0 {
		i := rng.Intn(len(keys))
		k := keys[i]
		keys[i] = keys[len(keys)-1]
		keys = keys[:len(keys)-1]
		if !m.Delete(k) {
			return fmt.Errorf("delete %d: key not found", k)
		}
		deleted++
		if stepCheck(checkEvery, deleted) {
			if err := m.Check(); err != nil {
				return fmt.Errorf("after deleting %d (key %d): %w", deleted, k, err)
			}
		}
	}
	if err := m.Check(); err != nil {
		return fmt.Errorf("after delete storm: %w", err)
	}
	if !m.IsEmpty() {
		return fmt.Errorf("after delete storm: %d elements left", m.Len())
	}
	log.Info("delete storm done", "deleted", deleted)
	return nil
}

func stepCheck(every, step int) bool {
	return every > 0 && step%every == 0
}
