// Command mesologia detects and statistically evaluates inter-word
// character patterns in the Hebrew Bible: places where the tail of one
// word and the head of the next reconstitute a target string.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tanakhlab/mesologia/core/corpus"
	"github.com/tanakhlab/mesologia/core/hebrew"
	"github.com/tanakhlab/mesologia/core/pattern"
	"github.com/tanakhlab/mesologia/core/scan"
	"github.com/tanakhlab/mesologia/core/stats"
	"github.com/tanakhlab/mesologia/internal/config"
	"github.com/tanakhlab/mesologia/internal/corpusio"
	"github.com/tanakhlab/mesologia/internal/logging"
	"github.com/tanakhlab/mesologia/internal/report"
)

const version = "0.2.0"

// CLI defines the command-line interface for mesologia.
var CLI struct {
	// Global flags
	Config string `name:"config" short:"c" help:"Path to TOML config file" type:"existingfile"`
	Corpus string `name:"corpus" help:"Corpus file path (overrides config)" type:"path"`
	Format string `name:"format" help:"Corpus format: tsv, osis, or sqlite (default: detect)"`
	Book   string `name:"book" help:"Restrict the run to one book"`

	Scan    ScanCmd     `cmd:"" help:"Find boundary instances of a pattern"`
	Stats   StatsCmd    `cmd:"" help:"Significance statistics for a single pattern"`
	Batch   BatchCmd    `cmd:"" help:"Evaluate a target pattern against control words"`
	Corpora CorpusGroup `cmd:"" name:"corpus" help:"Corpus inspection"`
	Init    InitCmd     `cmd:"" help:"Write a sample config file"`
	Version VersionCmd  `cmd:"" help:"Print version information"`
}

// CorpusGroup contains corpus inspection operations.
type CorpusGroup struct {
	Info CorpusInfoCmd `cmd:"" help:"Show corpus size, books, and snapshot hash"`
}

// loadRunConfig merges the config file (if any) with global flag
// overrides.
func loadRunConfig() (config.Config, error) {
	cfg := config.Default()
	if CLI.Config != "" {
		loaded, err := config.Load(CLI.Config)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if CLI.Corpus != "" {
		cfg.Corpus.Path = CLI.Corpus
	}
	if CLI.Format != "" {
		cfg.Corpus.Format = CLI.Format
	}
	if CLI.Book != "" {
		cfg.Corpus.Book = CLI.Book
	}
	logging.InitLogger(logging.ParseLevel(cfg.Logging.Level), logging.ParseFormat(cfg.Logging.Format))
	return cfg, nil
}

// loadCorpus reads the configured corpus source and builds the immutable
// snapshot, scoped to a single book when requested.
func loadCorpus(cfg config.Config) (*corpus.Corpus, *hebrew.Normalizer, error) {
	if cfg.Corpus.Path == "" {
		return nil, nil, fmt.Errorf("no corpus configured: pass --corpus or set corpus.path in the config file")
	}

	words, err := corpusio.Load(cfg.Corpus.Path, corpusio.Format(cfg.Corpus.Format))
	if err != nil {
		return nil, nil, err
	}

	normalizer := hebrew.New(hebrew.Options{KeepFinalForms: cfg.Normalization.KeepFinalForms})
	c, err := corpus.Build(words, normalizer)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Corpus.Book != "" {
		c, err = c.Book(cfg.Corpus.Book)
		if err != nil {
			return nil, nil, err
		}
	}

	logging.CorpusLoaded(cfg.Corpus.Path, c.Len(), c.Hash())
	return c, normalizer, nil
}

// resolveSpec parses the pattern expression from the flag, falling back
// to the config file's search target.
func resolveSpec(flagPattern string, cfg config.Config, n *hebrew.Normalizer) (pattern.Spec, error) {
	expr := flagPattern
	if expr == "" {
		expr = cfg.Search.Target
	}
	if expr == "" {
		return pattern.Spec{}, fmt.Errorf("no pattern given: pass one as an argument or set search.target in the config file")
	}
	return pattern.ParseExpr("", expr, n)
}

// controlSpecs builds the comparison battery from the config file's
// inline words plus its control CSV, if any.
func controlSpecs(cfg config.Config, n *hebrew.Normalizer) ([]pattern.Spec, error) {
	var specs []pattern.Spec

	for _, expr := range cfg.Controls.Words {
		spec, err := pattern.ParseExpr("", expr, n)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	if cfg.Controls.CSVPath != "" {
		controls, err := corpusio.ReadControlWords(cfg.Controls.CSVPath)
		if err != nil {
			return nil, err
		}
		for _, cw := range controls {
			spec, err := pattern.New(cw.Label, cw.Word, cw.Split, n)
			if err != nil {
				return nil, err
			}
			specs = append(specs, spec)
		}
	}

	return specs, nil
}

// ScanCmd finds boundary instances of a pattern.
type ScanCmd struct {
	Pattern string `arg:"" optional:"" help:"Pattern expression: word, word@N, or suffix+prefix"`
	Out     string `help:"Write instances to a CSV file" type:"path"`
	Summary bool   `help:"Print per-book instance counts" default:"true" negatable:""`
	Genre   string `help:"Only report instances in this division (TORAH, PROPHETS, WRITINGS)"`
}

func (s *ScanCmd) Run() error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}
	c, normalizer, err := loadCorpus(cfg)
	if err != nil {
		return err
	}
	spec, err := resolveSpec(s.Pattern, cfg, normalizer)
	if err != nil {
		return err
	}

	instances, err := scan.Scan(c, spec, scan.Options{ContextWindow: cfg.Search.ContextWindow})
	if err != nil {
		return err
	}
	if s.Genre != "" {
		instances = scan.FilterGenre(instances, corpus.Genre(s.Genre))
	}

	fmt.Printf("Pattern: %s\n", spec.String())
	fmt.Printf("Corpus:  %d tokens (%s)\n\n", c.Len(), c.Hash()[:12])

	if len(instances) == 0 {
		fmt.Println("No matches found.")
	} else {
		fmt.Println(report.RenderInstances(instances))
		fmt.Printf("\nFound %d matching boundaries.\n", len(instances))
	}

	if s.Summary && len(instances) > 0 {
		fmt.Println()
		fmt.Println(report.RenderBookSummary(scan.SummarizeByBook(instances)))
	}

	if s.Out != "" {
		f, err := os.Create(s.Out)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		if err := report.WriteInstancesCSV(f, instances); err != nil {
			return fmt.Errorf("write instances: %w", err)
		}
		fmt.Printf("\nWrote %s\n", s.Out)
	}

	return nil
}

// StatsCmd computes significance statistics for a single pattern.
type StatsCmd struct {
	Pattern string `arg:"" optional:"" help:"Pattern expression: word, word@N, or suffix+prefix"`
}

func (s *StatsCmd) Run() error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}
	c, normalizer, err := loadCorpus(cfg)
	if err != nil {
		return err
	}
	spec, err := resolveSpec(s.Pattern, cfg, normalizer)
	if err != nil {
		return err
	}

	result, _, err := stats.Run(c, spec,
		scan.Options{ContextWindow: cfg.Search.ContextWindow}, cfg.Search.Threshold)
	if err != nil {
		return err
	}

	batch := stats.BatchResult{
		RunID:      "single",
		CorpusHash: c.Hash(),
		Results:    []stats.Result{result},
	}
	fmt.Println(report.RenderResults(batch))
	return nil
}

// BatchCmd evaluates a target pattern against a battery of control words.
type BatchCmd struct {
	Pattern string `arg:"" optional:"" help:"Target pattern expression"`
	Out     string `help:"Write results to a CSV file" type:"path"`
}

func (b *BatchCmd) Run() error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}
	c, normalizer, err := loadCorpus(cfg)
	if err != nil {
		return err
	}

	target, err := resolveSpec(b.Pattern, cfg, normalizer)
	if err != nil {
		return err
	}
	controls, err := controlSpecs(cfg, normalizer)
	if err != nil {
		return err
	}

	specs := append([]pattern.Spec{target}, controls...)
	batch := stats.RunBatch(c, specs,
		scan.Options{ContextWindow: cfg.Search.ContextWindow}, cfg.Search.Threshold)

	fmt.Println(report.RenderResults(batch))

	if b.Out != "" {
		f, err := os.Create(b.Out)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		if err := report.WriteResultsCSV(f, batch); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		fmt.Printf("\nWrote %s\n", b.Out)
	}

	return nil
}

// CorpusInfoCmd shows corpus size, books, and the snapshot hash.
type CorpusInfoCmd struct{}

func (i *CorpusInfoCmd) Run() error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}
	c, _, err := loadCorpus(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Tokens:   %d\n", c.Len())
	fmt.Printf("Hash:     %s\n", c.Hash())
	fmt.Printf("SQLite:   %s driver\n", corpusio.DriverType())
	fmt.Printf("Books:    %d\n", len(c.Books()))
	for _, book := range c.Books() {
		fmt.Printf("  %-16s %s\n", book, corpus.ClassifyBook(book))
	}
	return nil
}

// InitCmd writes the sample config file.
type InitCmd struct {
	Path string `arg:"" optional:"" default:"mesologia.toml" help:"Destination path"`
}

func (i *InitCmd) Run() error {
	if err := config.WriteSample(i.Path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", i.Path)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	fmt.Printf("mesologia %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("mesologia"),
		kong.Description("Detect and evaluate inter-word character patterns in the Hebrew Bible."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "mesologia: %v\n", err)
		os.Exit(1)
	}
}
