package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/poiesic/prodsearch"
	"github.com/poiesic/prodsearch/catalog"
	"github.com/poiesic/prodsearch/core"
	"github.com/poiesic/prodsearch/prewarm"
	"github.com/poiesic/prodsearch/search"
	"github.com/poiesic/prodsearch/server"
	"github.com/urfave/cli/v2"
)

// openService loads the catalog and builds a Service backed by the
// configured embedding provider. The returned func releases both.
func openService(ctx context.Context, c *cli.Context) (*prodsearch.Service, func(), error) {
	cfg, err := embeddingConfig(c)
	if err != nil {
		return nil, nil, err
	}

	products, err := catalog.LoadOrSample(c.String("catalog"))
	if err != nil {
		return nil, nil, err
	}

	repo, err := prodsearch.OpenCatalog(ctx, products)
	if err != nil {
		return nil, nil, err
	}

	svc, err := prodsearch.NewService(ctx, repo, prodsearch.NewProviderFactory(cfg))
	if err != nil {
		repo.Close()
		return nil, nil, err
	}

	slog.Info("catalog loaded",
		"products", len(products),
		"fingerprint", catalog.Fingerprint(products),
		"backend", cfg.Backend,
		"host", cfg.EmbeddingHost,
		"model", cfg.EmbeddingModel)

	return svc, func() {
		if err := svc.Close(); err != nil {
			slog.Error("error closing service", "err", err)
		}
		if err := repo.Close(); err != nil {
			slog.Error("error closing catalog", "err", err)
		}
	}, nil
}

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, release, err := openService(ctx, c)
	if err != nil {
		return err
	}
	defer release()

	if c.Bool("warm") {
		warmer, err := prewarm.New(svc,
			prewarm.WithMaxAttempts(c.Int("max-retries")),
			prewarm.WithBaseDelay(c.Duration("retry-delay")),
		)
		if err != nil {
			return err
		}
		defer warmer.Release()
		warmer.Submit(ctx)
	}

	srv, err := server.New(svc,
		server.WithCORSOrigin(c.String("cors-origin")),
		server.WithTitle(c.String("title")),
	)
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(c.String("host"), strconv.Itoa(c.Int("port")))
	return srv.ListenAndServe(ctx, addr)
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return errors.New("search: a query is required")
	}

	ctx := c.Context
	svc, release, err := openService(ctx, c)
	if err != nil {
		return err
	}
	defer release()

	out := c.App.Writer
	var monitor *explainMonitor
	if c.Bool("explain") {
		monitor = &explainMonitor{out: out}
	}

	results, err := svc.SearchWithMonitor(ctx, query, monitor.orNil())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Found %d products for %q\n", len(results), query)
	for i, r := range results {
		fmt.Fprintf(out, "%2d. %-28s %-16s %6.2f%%\n", i+1, r.Name, r.Category, r.Score)
	}
	return nil
}

func catalogCommand(c *cli.Context) error {
	products, err := catalog.LoadOrSample(c.String("catalog"))
	if err != nil {
		return err
	}
	printCatalog(c.App.Writer, products)
	return nil
}

func printCatalog(out io.Writer, products []core.Product) {
	for _, p := range products {
		fmt.Fprintf(out, "%3d  %-16s %-28s %s\n", p.ID, p.Category, p.Name, p.Description)
	}
	fmt.Fprintf(out, "%d products, fingerprint %s\n", len(products), catalog.Fingerprint(products))
}

// explainMonitor prints every raw similarity the ranker computes.
type explainMonitor struct {
	out io.Writer
}

func (m *explainMonitor) orNil() search.RankMonitor {
	if m == nil {
		return nil
	}
	return m
}

func (m *explainMonitor) Start(query string) {
	fmt.Fprintf(m.out, "query: %q\n", query)
}

func (m *explainMonitor) AfterQueryEmbedding(dimension int) {
	fmt.Fprintf(m.out, "query vector: %d dimensions\n", dimension)
}

func (m *explainMonitor) Kept(p core.Product, raw float64) {
	fmt.Fprintf(m.out, "  keep    %-28s raw=%.4f\n", p.Name, raw)
}

func (m *explainMonitor) Discarded(p core.Product, raw float64) {
	fmt.Fprintf(m.out, "  discard %-28s raw=%.4f\n", p.Name, raw)
}

func (m *explainMonitor) Finish(results []core.RankedResult) {
	fmt.Fprintf(m.out, "kept %d\n", len(results))
}
