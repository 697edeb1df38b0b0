package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/olgasafonova/notion-cms-mcp-server/cms"
	"github.com/olgasafonova/notion-cms-mcp-server/internal/config"
)

// measureDiscovery times the index and the full listing of the collection
func measureDiscovery(ctx context.Context, client *cms.Client) ([]string, bool) {
	fmt.Println("=== Discovery ===")
	fmt.Println()

	fmt.Println("1. Index (slug, title, url):")
	start := time.Now()
	idx, err := client.Index(ctx, cms.IndexFormatArray)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return nil, false
	}
	indexTime := time.Since(start)
	fmt.Printf("   Index time: %v (%d entries)\n", indexTime, idx.Len())
	fmt.Println()

	fmt.Println("2. Full list (all fields):")
	start = time.Now()
	items, err := client.List(ctx)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return nil, false
	}
	listTime := time.Since(start)
	fmt.Printf("   List time: %v (%d items)\n", listTime, len(items))
	if indexTime > 0 {
		fmt.Printf("   List/Index ratio: %.1fx\n", float64(listTime)/float64(indexTime))
	}
	fmt.Println()

	return idx.Slugs(), true
}

// measureBatchPerformance compares one parallel batch with sequential fetches
func measureBatchPerformance(ctx context.Context, client *cms.Client, slugs []string) {
	fmt.Println("=== Batch vs Sequential Performance ===")
	fmt.Println()

	if len(slugs) < 2 {
		fmt.Println("Not enough items to compare")
		return
	}

	fmt.Printf("Testing with %d items: %v\n\n", len(slugs), slugs)

	fmt.Println("3. Batch (parallel):")
	start := time.Now()
	items, err := client.Batch(ctx, slugs)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	batchTime := time.Since(start)
	fmt.Printf("   Batch time for %d items: %v\n", len(items), batchTime)
	fmt.Printf("   Average per item: %v\n", batchTime/time.Duration(len(items)))
	fmt.Println()

	fmt.Println("4. Sequential GetBySlug (for comparison):")
	start = time.Now()
	for _, slug := range slugs {
		_, _ = client.GetBySlug(ctx, slug)
	}
	sequentialTime := time.Since(start)
	fmt.Printf("   Sequential time for %d items: %v\n", len(slugs), sequentialTime)
	fmt.Printf("   Parallel speedup: %.1fx faster\n", float64(sequentialTime)/float64(batchTime))
	fmt.Println()
}

func main() {
	n := flag.Int("n", 5, "number of items to fetch in the batch comparison")
	flag.Parse()

	fmt.Println("Notion CMS MCP Server - Performance Measurements")
	fmt.Println("================================================")
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client, err := cfg.NewClient(logger)
	if err != nil {
		fmt.Printf("Client error: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()

	slugs, ok := measureDiscovery(ctx, client)
	if !ok {
		os.Exit(1)
	}
	if len(slugs) > *n {
		slugs = slugs[:*n]
	}
	measureBatchPerformance(ctx, client, slugs)

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("• Index is the cheap way to enumerate; list carries every field")
	fmt.Println("• Batch issues one request per slug, all at once")
	fmt.Println("• Connection reuse: HTTP/2 + connection pooling reduces latency")
}
