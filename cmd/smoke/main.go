// Command smoke calls every contract endpoint of a running server and prints
// a colored pass/fail line per call.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"deal-insights-be/internal/config"
	"deal-insights-be/internal/pkg/logger"
	"deal-insights-be/internal/client"
	"deal-insights-be/pkg/filter"

	"github.com/fatih/color"
)

type check struct {
	name string
	run  func(ctx context.Context) (interface{}, error)
}

func main() {
	cfg := config.Load()
	baseURL := flag.String("base-url", cfg.Client.APIBaseURL, "API base URL")
	verbose := flag.Bool("v", false, "print response bodies")
	flag.Parse()

	c := client.New(*baseURL, cfg.Client.Timeout,
		client.WithLogger(logger.NewIsolatedLogger("logs/smoke.log")))

	var finance filter.Selection
	if err := finance.Toggle(filter.FacetIndustry, "Finance"); err != nil {
		panic(err)
	}

	checks := []check{
		{"GET /projects", func(ctx context.Context) (interface{}, error) { return c.Projects(ctx, nil, "") }},
		{"GET /projects?industry=Finance", func(ctx context.Context) (interface{}, error) { return c.Projects(ctx, &finance, "") }},
		{"GET /projects/1", func(ctx context.Context) (interface{}, error) { return c.Project(ctx, 1) }},
		{"GET /projects/1/similar", func(ctx context.Context) (interface{}, error) { return c.SimilarProjects(ctx, 1, 3) }},
		{"GET /stats", func(ctx context.Context) (interface{}, error) { return c.Stats(ctx, nil) }},
		{"GET /filters", func(ctx context.Context) (interface{}, error) { return c.FilterOptions(ctx) }},
		{"POST /search", func(ctx context.Context) (interface{}, error) { return c.Search(ctx, "analytics") }},
		{"POST /chat", func(ctx context.Context) (interface{}, error) {
			return c.Chat(ctx, "What strategies work best for finance?", nil)
		}},
		{"GET /dashboard", func(ctx context.Context) (interface{}, error) { return c.Dashboard(ctx, &finance, "") }},
	}

	color.Cyan("🚀 Smoke testing %s", *baseURL)
	failed := 0
	ctx := context.Background()
	for _, chk := range checks {
		res, err := chk.run(ctx)
		if err != nil {
			failed++
			color.Red("❌ %-32s %v", chk.name, err)
			continue
		}
		color.Green("✅ %s", chk.name)
		if *verbose {
			prettyPrint(res)
		}
	}

	fmt.Println()
	if failed > 0 {
		color.Red("%d/%d checks failed", failed, len(checks))
		os.Exit(1)
	}
	color.Green("All %d checks passed", len(checks))
}

func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}
