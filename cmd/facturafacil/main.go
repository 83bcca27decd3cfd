// Copyright 2026 FacturaFacil
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	facturafacil "github.com/Antoniohuaman/FacturaFacil-sub001"
	"github.com/Antoniohuaman/FacturaFacil-sub001/ingestion"
	"github.com/Antoniohuaman/FacturaFacil-sub001/search"
)

func main() {
	app := &cli.App{
		Name:  "facturafacil",
		Usage: "Catalog search for the invoicing command palette",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "load",
				Usage:     "Load a JSON file of items into a collection",
				ArgsUsage: "FILE",
				Action:    loadCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the catalog database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "collection",
						Aliases:  []string{"c"},
						Usage:    "Collection to load items into",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of items to write in each batch",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent batch writers",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search loaded collections",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the catalog database directory",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:    "section",
						Aliases: []string{"s"},
						Usage:   "Section definition as key:Title:routeBase (repeatable)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum results per section",
						Value: search.DefaultSectionLimit,
					},
				},
			},
			{
				Name:   "collections",
				Usage:  "List collections stored in the catalog",
				Action: collectionsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the catalog database directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one input file argument")
	}
	filePath := c.Args().First()

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	catalog, err := facturafacil.OpenCatalog(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer catalog.Close()

	var opts []ingestion.Option
	if c.IsSet("batch-size") {
		opts = append(opts, ingestion.WithBatchSize(c.Int("batch-size")))
	}
	if c.IsSet("pool-size") {
		opts = append(opts, ingestion.WithPoolSize(c.Int("pool-size")))
	}

	loader, err := catalog.NewLoader(opts...)
	if err != nil {
		return fmt.Errorf("failed to create loader: %w", err)
	}
	defer loader.Release()

	report, err := loader.Load(context.Background(), c.String("collection"), file)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	fmt.Printf("Loaded %d items into %q (%d skipped)\n",
		report.Loaded, c.String("collection"), report.Skipped)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")

	defs, err := parseSectionDefs(c.StringSlice("section"))
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		return fmt.Errorf("at least one --section definition is required")
	}

	catalog, err := facturafacil.OpenCatalog(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer catalog.Close()

	datasets, err := catalog.Datasets(context.Background(), defs...)
	if err != nil {
		return fmt.Errorf("failed to snapshot collections: %w", err)
	}

	engine, err := catalog.NewEngine(search.WithSectionLimit(c.Int("limit")))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	state := engine.Search(query, datasets)

	if !state.HasSearchText {
		fmt.Println("Type something to search.")
		return nil
	}
	if !state.HasResults {
		fmt.Printf("No results for %q.\n", query)
		return nil
	}

	for _, def := range defs {
		section := state.Sections[def.Key]
		if section.Total == 0 {
			continue
		}

		fmt.Printf("%s (%d)\n", section.Title, section.Total)
		for _, item := range section.Items {
			fmt.Printf("  %s", renderHighlighted(item.Title, query))
			if item.Subtitle != "" {
				fmt.Printf("  —  %s", renderHighlighted(item.Subtitle, query))
			}
			if item.Amount != nil {
				fmt.Printf("  [%s %s %.2f]", item.Amount.Label, item.Amount.Currency, item.Amount.Value)
			}
			fmt.Printf("  (%s%s)\n", section.RouteBase, "/"+item.ID)
		}
		if section.HasMore {
			fmt.Printf("  ... and %d more\n", section.Total-len(section.Items))
		}
	}
	return nil
}

func collectionsCommand(c *cli.Context) error {
	catalog, err := facturafacil.OpenCatalog(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer catalog.Close()

	names, err := catalog.Items().Collections(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	if len(names) == 0 {
		fmt.Println("No collections loaded.")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

// parseSectionDefs parses key:Title:routeBase definitions. Title and
// routeBase fall back to the key when omitted.
func parseSectionDefs(specs []string) ([]facturafacil.DatasetDef, error) {
	defs := make([]facturafacil.DatasetDef, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 3)
		if parts[0] == "" {
			return nil, fmt.Errorf("invalid section definition %q: empty key", spec)
		}

		def := facturafacil.DatasetDef{Key: parts[0], Title: parts[0], RouteBase: "/" + parts[0]}
		if len(parts) > 1 && parts[1] != "" {
			def.Title = parts[1]
		}
		if len(parts) > 2 && parts[2] != "" {
			def.RouteBase = parts[2]
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// renderHighlighted wraps matching runs of a display value in brackets.
func renderHighlighted(value, query string) string {
	var b strings.Builder
	for _, seg := range search.Highlight(value, query) {
		if seg.Match {
			b.WriteString("[")
			b.WriteString(seg.Text)
			b.WriteString("]")
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
