// Copyright 2025 Poiesic Systems
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
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/poiesic/prodsearch/ai"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "prodsearch",
		Usage: "Semantic search over a product catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"PRODSEARCH_LOG_LEVEL"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the search page and JSON API",
				Action: serveCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "host",
						Usage:   "Interface to listen on",
						Value:   "0.0.0.0",
						EnvVars: []string{"PRODSEARCH_HOST"},
					},
					&cli.IntFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Usage:   "Port to listen on",
						Value:   8000,
						EnvVars: []string{"PRODSEARCH_PORT"},
					},
					&cli.StringFlag{
						Name:    "cors-origin",
						Usage:   "Allowed CORS origin",
						Value:   "*",
						EnvVars: []string{"PRODSEARCH_CORS_ORIGIN"},
					},
					&cli.StringFlag{
						Name:    "title",
						Usage:   "Search page title",
						Value:   "Product Search",
						EnvVars: []string{"PRODSEARCH_TITLE"},
					},
					&cli.BoolFlag{
						Name:    "warm",
						Usage:   "Load the model and catalog embeddings in the background at startup",
						EnvVars: []string{"PRODSEARCH_WARM"},
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum warm-up attempts",
						Value: 5,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for warm-up exponential backoff",
						Value: 1 * time.Second,
					},
				}, catalogFlags()...),
			},
			{
				Name:      "search",
				Usage:     "Rank the catalog against a query and print the results",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "explain",
						Usage: "Print raw similarities, including discarded products",
					},
				}, catalogFlags()...),
			},
			{
				Name:   "catalog",
				Usage:  "Print the product catalog and its fingerprint",
				Action: catalogCommand,
				Flags: []cli.Flag{
					catalogFileFlag(),
				},
			},
		},
	}
}

func catalogFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "catalog",
		Aliases: []string{"c"},
		Usage:   "Path to a YAML product catalog (built-in sample when empty)",
		EnvVars: []string{"PRODSEARCH_CATALOG"},
	}
}

// catalogFlags are shared by the commands that embed the catalog.
func catalogFlags() []cli.Flag {
	return []cli.Flag{
		catalogFileFlag(),
		&cli.StringFlag{
			Name:    "embedding-backend",
			Usage:   "Embedding backend (openai, ollama)",
			Value:   ai.BackendOpenAI,
			EnvVars: []string{"PRODSEARCH_EMBEDDING_BACKEND"},
		},
		&cli.StringFlag{
			Name:    "embedding-host",
			Usage:   "Embedding service host URL",
			Value:   "http://localhost:11434/v1",
			EnvVars: []string{"PRODSEARCH_EMBEDDING_HOST"},
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Embedding model name",
			Value:   "all-minilm",
			EnvVars: []string{"PRODSEARCH_EMBEDDING_MODEL"},
		},
		&cli.StringFlag{
			Name:    "embedding-token",
			Usage:   "API token for the embedding service",
			Value:   "none",
			EnvVars: []string{"PRODSEARCH_EMBEDDING_TOKEN"},
		},
	}
}

func embeddingConfig(c *cli.Context) (*ai.Config, error) {
	cfg := ai.NewConfig(
		ai.WithBackend(c.String("embedding-backend")),
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithToken(c.String("embedding-token")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogger(c *cli.Context) error {
	level, err := parseLogLevel(c.String("log-level"))
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", s)
	}
}
