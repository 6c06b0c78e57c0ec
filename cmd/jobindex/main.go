/*
Package main implements the jobserve batch indexer.

jobindex consumes a file of raw job titles (one per line), normalizes them
into single lowercase words, counts word frequencies, and builds the prefix
index the lookup service reads at startup. The build is one-shot and
deterministic: rebuilding from the same titles file yields a byte-identical
artifact. Both artifacts are published atomically, so a failed build never
leaves a partially written index behind.

# Usage

Build an index from a titles file into the default data directory:

	jobindex -in titles.txt

Use a custom data directory and config, with debug logging:

	jobindex -in titles.txt -data /var/lib/jobserve -config ./config.toml -d

The normalization policy (accepted alphabet, minimum word length, minimum
generated prefix length, stop tokens) comes entirely from the TOML config:

	[normalize]
	alphabet_extras = "äöüàâçéèêëîïôû"
	min_word_length = 3
	min_prefix_length = 1
	stop_tokens = ["mw", "wm"]

An invalid policy aborts the build before any title is read. A single
malformed title never does: undecodable bytes degrade to token separators
and the build continues.
*/
package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/jobserve/jobserve/internal/logger"
	"github.com/jobserve/jobserve/internal/utils"
	"github.com/jobserve/jobserve/pkg/config"
	"github.com/jobserve/jobserve/pkg/corpus"
)

func main() {
	inputPath := flag.String("in", "", "File with raw job titles, one per line (required)")
	dataDir := flag.String("data", "data/", "Directory to publish the index artifacts into")
	configPath := flag.String("config", "config.toml", "Path to the TOML config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")

	flag.Parse()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	if *inputPath == "" {
		flag.Usage()
		log.Fatal("Missing required -in flag")
	}

	blog := logger.New("indexer")

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		blog.Fatalf("Failed to load config: %v", err)
	}

	builder, err := corpus.NewBuilder(cfg.Policy())
	if err != nil {
		blog.Fatalf("Invalid normalization config: %v", err)
	}

	titles, err := readTitles(*inputPath)
	if err != nil {
		blog.Fatalf("Failed to read titles from %s: %v", *inputPath, err)
	}
	blog.Infof("Read %d titles from %s", len(titles), *inputPath)

	freqs, index := builder.Build(titles)
	blog.Infof("Built index: %d distinct words, %d prefixes", len(freqs), len(index))

	if err := utils.EnsureDir(*dataDir); err != nil {
		blog.Fatalf("Failed to create data dir %s: %v", *dataDir, err)
	}
	if err := corpus.SaveIndex(cfg.IndexPath(*dataDir), index); err != nil {
		blog.Fatalf("Failed to publish index: %v", err)
	}
	if err := corpus.SaveFrequencies(cfg.FreqsPath(*dataDir), freqs); err != nil {
		blog.Fatalf("Failed to publish frequencies: %v", err)
	}

	blog.Infof("Published artifacts to %s", *dataDir)
}

// readTitles loads the raw title lines. Blank lines are skipped; everything
// else is handed to the normalizer as-is.
func readTitles(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var titles []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		titles = append(titles, line)
	}
	return titles, scanner.Err()
}
