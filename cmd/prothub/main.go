package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/prothub/pkg/config"
	"github.com/dd0wney/prothub/pkg/logging"
	"github.com/dd0wney/prothub/pkg/metrics"
	"github.com/dd0wney/prothub/pkg/pipeline"
	"github.com/dd0wney/prothub/pkg/stringdb"
	"github.com/dd0wney/prothub/pkg/visualization"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5FAF"))

	hubStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AFFF"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func main() {
	var (
		proteins   = flag.String("proteins", "", "Protein names or UniProt IDs, separated by commas or newlines")
		species    = flag.Int("species", 0, "NCBI taxonomy ID (default from config, human 9606)")
		minScore   = flag.Float64("min-score", -1, "Minimum interaction confidence in [0,1]")
		topN       = flag.Int("top-n", -1, "Number of hub proteins to report")
		seed       = flag.Int64("seed", 0, "Layout seed (any int64; default from config)")
		iterations = flag.Int("iterations", 0, "Layout iterations")
		configPath = flag.String("config", "", "Path to YAML config file")
		outPath    = flag.String("out", "", "Write the scene description as JSON to this file")
	)
	flag.Parse()

	logger := logging.NewDefaultLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", logging.Error(err))
		os.Exit(1)
	}
	logger = logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.Logging.Level))

	// Flag overrides on top of config.
	if *species != 0 {
		cfg.Analysis.Species = *species
	}
	if *minScore >= 0 {
		cfg.Analysis.MinScore = *minScore
	}
	if *topN >= 0 {
		cfg.Analysis.TopN = *topN
	}
	if flagPassed(flag.CommandLine, "seed") {
		cfg.Layout.Seed = *seed
	}
	if *iterations > 0 {
		cfg.Layout.Iterations = *iterations
	}

	identifiers := splitIdentifiers(*proteins)
	if len(identifiers) == 0 {
		fmt.Fprintln(os.Stderr, "usage: prothub -proteins TP53,EGFR [-species 9606] [-min-score 0.4] [-top-n 5] [-out scene.json]")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.API.TimeoutSeconds)*time.Second)
	defer cancel()

	registry := metrics.DefaultRegistry()
	client := stringdb.NewClient(cfg.API.BaseURL, stringdb.WithCallerIdentity(cfg.API.CallerIdentity))

	fetchStart := time.Now()
	records, err := client.Network(ctx, identifiers, cfg.Analysis.Species, cfg.Analysis.MinScore)
	if err != nil {
		registry.RecordFetch("error", time.Since(fetchStart))
		logger.Error("failed to fetch interactions", logging.Error(err))
		os.Exit(1)
	}
	registry.RecordFetch("ok", time.Since(fetchStart))

	analyzer := pipeline.New(logger, registry)
	result, err := analyzer.Analyze(ctx, records, pipeline.Options{
		TopN: cfg.Analysis.TopN,
		Layout: visualization.LayoutConfig{
			Width:      cfg.Layout.Width,
			Height:     cfg.Layout.Height,
			Padding:    cfg.Layout.Padding,
			Iterations: cfg.Layout.Iterations,
			Seed:       cfg.Layout.Seed,
			SpacingK:   cfg.Layout.SpacingK,
		},
	})
	if err != nil {
		logger.Error("analysis failed", logging.Error(err))
		os.Exit(1)
	}

	if result.Outcome == pipeline.OutcomeNoData {
		fmt.Println(dimStyle.Render(fmt.Sprintf(
			"No interaction data found for %s with the current settings. "+
				"Try a lower score threshold or check your identifiers.",
			strings.Join(identifiers, ", "))))
		return
	}

	printSummary(result)

	if *outPath != "" {
		if err := writeScene(result, *outPath); err != nil {
			logger.Error("failed to write scene", logging.Error(err))
			os.Exit(1)
		}
		fmt.Println(dimStyle.Render("scene written to " + *outPath))
	}
}

func printSummary(result *pipeline.Result) {
	fmt.Println(titleStyle.Render("Protein Interaction Network"))
	fmt.Println(statStyle.Render(fmt.Sprintf("Nodes (proteins):     %d", result.Graph.NodeCount())))
	fmt.Println(statStyle.Render(fmt.Sprintf("Edges (interactions): %d", result.Graph.EdgeCount())))
	if result.RecordsDropped > 0 {
		fmt.Println(dimStyle.Render(fmt.Sprintf("Dropped %d malformed records", result.RecordsDropped)))
	}

	if len(result.Ranking) == 0 {
		return
	}
	fmt.Println(titleStyle.Render("Top Hub Proteins"))
	for i, rn := range result.Ranking {
		fmt.Printf("%2d. %s %s\n", i+1,
			hubStyle.Render(rn.Label),
			dimStyle.Render(fmt.Sprintf("(degree %d)", rn.Degree)))
	}
}

func writeScene(result *pipeline.Result, path string) error {
	data, err := json.MarshalIndent(result.Scene, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// flagPassed reports whether a flag was set on the command line, so a
// config value is only overridden when the user actually passed the flag.
// Seeds in particular span the full int64 range, leaving no value free to
// act as an "unset" sentinel.
func flagPassed(fs *flag.FlagSet, name string) bool {
	passed := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

// splitIdentifiers splits user input on commas and newlines, trimming
// whitespace and dropping empties.
func splitIdentifiers(input string) []string {
	var out []string
	for _, group := range strings.Split(input, ",") {
		for _, ident := range strings.FieldsFunc(group, func(r rune) bool {
			return r == '\n' || r == '\r'
		}) {
			ident = strings.TrimSpace(ident)
			if ident != "" {
				out = append(out, ident)
			}
		}
	}
	return out
}
