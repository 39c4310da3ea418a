// Copyright 2026 The Crossdex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the crossdex dictionary query CLI.

Crossdex answers crossword slot queries against a scored word dictionary:
given a fixed-length pattern of letters and '.' wildcards, it prints the
dictionary words that fit, ranked by crossword quality score. It exists for
inspecting dictionaries and debugging fills; generators link the library
packages directly.

# Usage

Query the master dictionary interactively:

	crossdex

Use a custom dictionary and minimum score:

	crossdex -dict words.dict -min 40

Each input line is a pattern. Lines starting with ':' are commands:

	:count .R..E     domain size for a pattern
	:score TRACE     score lookup
	:has CRANE       membership check
	:prefix BLA      score-ranked prefix completion
	:stats           loaded dictionary statistics
	:quit

# Configuration

Defaults come from crossdex.toml in the working directory:

	[dict]
	path = "database/crossword-master.dict"
	snapshot = ""

	[cli]
	default_limit = 24
	default_min_score = 1

The -snap flag writes a msgpack snapshot of the loaded dictionary, which
loads faster than the text format on subsequent runs.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/crossdex/xword-lib/internal/logger"
	"github.com/crossdex/xword-lib/internal/utils"
	"github.com/crossdex/xword-lib/pkg/config"
	"github.com/crossdex/xword-lib/pkg/index"
)

func main() {
	dictPath := flag.String("dict", "", "dictionary file path (overrides config)")
	configPath := flag.String("config", "", "config file path")
	snapPath := flag.String("snap", "", "write a binary snapshot of the loaded dictionary and exit")
	limit := flag.Int("limit", 0, "max results per query (0 = config default)")
	minScore := flag.Int("min", 0, "minimum score threshold (0 = config default)")
	debug := flag.Bool("d", false, "enable debug logging")
	flag.Parse()

	logger.SetDebug(*debug)
	lg := logger.New("crossdex")

	cfg, cfgFile, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		lg.Fatalf("Failed to load config: %v", err)
	}
	if cfgFile != "" {
		lg.Debugf("Config: %s", utils.GetAbsolutePath(cfgFile))
	}

	path := cfg.Dict.Path
	if *dictPath != "" {
		path = *dictPath
	}
	if *limit <= 0 {
		*limit = cfg.CLI.DefaultLimit
	}
	if *minScore <= 0 {
		*minScore = cfg.CLI.DefaultMinScore
	}

	ix := index.New()
	if err := ix.LoadFile(path); err != nil {
		lg.Fatalf("Failed to load dictionary: %v", err)
	}

	if *snapPath != "" {
		if err := utils.EnsureDir(filepath.Dir(*snapPath)); err != nil {
			lg.Fatalf("Failed to create snapshot directory: %v", err)
		}
		if err := ix.SaveSnapshot(*snapPath); err != nil {
			lg.Fatalf("Failed to write snapshot: %v", err)
		}
		lg.Infof("Snapshot written to %s", *snapPath)
		return
	}

	repl(ix, *limit, *minScore)
}

func repl(ix *index.WordIndex, limit, minScore int) {
	fmt.Println("crossdex: enter a pattern ('.' = any letter), :help for commands")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if !runCommand(ix, line, limit, minScore) {
				return
			}
			continue
		}
		printCandidates(ix, line, limit, minScore)
	}
}

// runCommand handles one ':' command, returning false on :quit.
func runCommand(ix *index.WordIndex, line string, limit, minScore int) bool {
	fields := strings.Fields(line)
	cmd, arg := fields[0], ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch cmd {
	case ":quit", ":q", ":exit":
		return false
	case ":count":
		min := minScore
		if len(fields) > 2 {
			if n, err := strconv.Atoi(fields[2]); err == nil {
				min = n
			}
		}
		fmt.Println(ix.CountCandidates(arg, min))
	case ":score":
		fmt.Println(ix.Score(arg))
	case ":has":
		fmt.Println(ix.Has(arg))
	case ":prefix":
		for _, sw := range ix.CompletePrefix(arg, limit) {
			fmt.Printf("%s\t%d\n", sw.Word, sw.Score)
		}
	case ":stats":
		printStats(ix.Stats())
	case ":help":
		fmt.Println("commands: :count <pattern> [min], :score <word>, :has <word>, :prefix <p>, :stats, :quit")
	default:
		fmt.Printf("unknown command %s (:help for a list)\n", cmd)
	}
	return true
}

func printCandidates(ix *index.WordIndex, pattern string, limit, minScore int) {
	results := ix.CandidatesSorted(pattern, minScore)
	total := len(results)
	if limit > 0 && total > limit {
		results = results[:limit]
	}
	for _, sw := range results {
		fmt.Printf("%s\t%d\n", sw.Word, sw.Score)
	}
	fmt.Printf("(%d match)\n", total)
}

func printStats(st index.Stats) {
	fmt.Printf("words: %d  skipped: %d  avg score: %.1f  pos keys: %d\n",
		st.TotalWords, st.Skipped, st.AvgScore, st.PosKeys)
	for length := 1; length <= 31; length++ {
		if n, ok := st.ByLength[length]; ok {
			fmt.Printf("  %2d letters: %d\n", length, n)
		}
	}
}
