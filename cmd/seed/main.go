package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/minglemoody/internal/config"
	"github.com/minglemoody/internal/content"
	"github.com/minglemoody/internal/db"
	"github.com/minglemoody/internal/logging"
	"github.com/minglemoody/internal/storage/driver"
)

// 演示数据生成器
func main() {
	reset := flag.Bool("reset", false, "restore the built-in defaults instead of writing demo data")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close(db.DB)

	backend, err := driver.Open(cfg, db.DB)
	if err != nil {
		log.Fatalf("failed to open content storage: %v", err)
	}
	defer backend.Close()

	store := content.NewStore(backend, log)
	ctx := context.Background()

	if *reset {
		if err := resetAll(ctx, store); err != nil {
			log.Fatalf("reset failed: %v", err)
		}
		log.Info("content restored to defaults")
		return
	}

	if err := seedDemo(ctx, store); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.WithField("storage", cfg.StorageDriver).Info("demo content written")
}

func resetAll(ctx context.Context, store *content.Store) error {
	if err := store.ResetLandingContent(ctx); err != nil {
		return err
	}
	if err := store.ResetSearchButtons(ctx); err != nil {
		return err
	}
	return store.ResetWebResults(ctx)
}

// seedDemo 写入默认文案、默认按钮，并为第 2 到第 5 页各补充两条结果。
func seedDemo(ctx context.Context, store *content.Store) error {
	if err := store.SaveLandingContent(ctx, content.DefaultLandingContent()); err != nil {
		return err
	}
	if err := store.SaveSearchButtons(ctx, content.DefaultSearchButtons()); err != nil {
		return err
	}
	return store.SaveWebResults(ctx, demoResults())
}

func demoResults() []content.WebResult {
	results := content.DefaultWebResults()
	for page := 2; page <= content.MaxPage; page++ {
		results = append(results,
			content.WebResult{
				ID:          fmt.Sprintf("demo-%d-sponsored", page),
				Name:        fmt.Sprintf("Partner %d", page),
				Link:        fmt.Sprintf("https://partner%d.example.com", page),
				Title:       fmt.Sprintf("Featured pick for page %d", page),
				Description: "A sponsored listing used for local previews.",
				Sponsored:   true,
				PageNumber:  page,
			},
			content.WebResult{
				ID:          fmt.Sprintf("demo-%d-regular", page),
				Name:        fmt.Sprintf("Example %d", page),
				Link:        fmt.Sprintf("https://example.com/%d", page),
				Title:       fmt.Sprintf("Popular links on page %d", page),
				Description: "A regular listing used for local previews.",
				PageNumber:  page,
			},
		)
	}
	return results
}
