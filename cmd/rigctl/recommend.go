// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tomtom215/rigbudget/internal/catalog"
	"github.com/tomtom215/rigbudget/internal/models"
	"github.com/tomtom215/rigbudget/internal/recommend"
)

var (
	recommendBudget      float64
	recommendPlatform    string
	recommendGPU         string
	recommendCatalogURL  string
	recommendCatalogFile string
	recommendTimeout     time.Duration
	recommendJSON        bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a build for a budget",
	Long: `Splits the budget across the eight component categories and picks the
part in each category that uses its share best. Categories where nothing fits
fall back to the cheapest part.`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func init() {
	f := recommendCmd.Flags()
	f.Float64VarP(&recommendBudget, "budget", "b", 0, "total budget in IDR (required)")
	f.StringVar(&recommendPlatform, "platform", "all", "CPU platform: all, intel or amd")
	f.StringVar(&recommendGPU, "gpu", "all", "GPU vendor: all, nvidia or amd")
	f.StringVar(&recommendCatalogURL, "catalog-url", "", "base URL of a catalog server")
	f.StringVar(&recommendCatalogFile, "catalog-file", "", "path to an exported catalog JSON file")
	f.DurationVar(&recommendTimeout, "timeout", 10*time.Second, "catalog request timeout")
	f.BoolVar(&recommendJSON, "json", false, "output the result as JSON")
	_ = recommendCmd.MarkFlagRequired("budget")
	recommendCmd.MarkFlagsMutuallyExclusive("catalog-url", "catalog-file")
	recommendCmd.MarkFlagsOneRequired("catalog-url", "catalog-file")
	rootCmd.AddCommand(recommendCmd)
}

func catalogSource(url, file string, timeout time.Duration) (catalog.Source, error) {
	if file != "" {
		return catalog.NewFileSource(file), nil
	}
	return catalog.NewRemoteSource(catalog.RemoteConfig{BaseURL: url, Timeout: timeout})
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	platform, err := models.ParsePlatformFilter(recommendPlatform)
	if err != nil {
		return err
	}
	gpu, err := models.ParseGPUVendorFilter(recommendGPU)
	if err != nil {
		return err
	}

	source, err := catalogSource(recommendCatalogURL, recommendCatalogFile, recommendTimeout)
	if err != nil {
		return err
	}

	engine := recommend.NewEngine(catalog.NewAccessor(source, zerolog.Nop()), zerolog.Nop())
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := engine.Recommend(ctx, recommend.Request{
		Budget:    recommendBudget,
		Platform:  platform,
		GPUVendor: gpu,
	})
	if err != nil {
		if errors.Is(err, recommend.ErrInvalidBudget) {
			return errors.New("budget must be a positive number")
		}
		return fmt.Errorf("recommendation failed: %w", err)
	}

	if recommendJSON {
		return outputRecommendJSON(cmd, result)
	}
	outputRecommendTable(cmd, result)
	return nil
}

func outputRecommendJSON(cmd *cobra.Command, result *recommend.EngineResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecommendTable(cmd *cobra.Command, result *recommend.EngineResult) {
	if result.Warning != "" {
		cmd.Printf("Warning: %s\n\n", result.Warning)
	}

	for _, a := range result.Allocation {
		if a.Selected == nil {
			cmd.Printf("  %-12s -\n", a.Category)
			continue
		}
		marker := ""
		if a.Source == recommend.SourceFallback {
			marker = " (over budget share)"
		}
		cmd.Printf("  %-12s %-40s Rp %s%s\n", a.Category, a.Selected.Name, formatRupiah(a.Selected.Price), marker)
	}
	cmd.Printf("\n  %-12s %-40s Rp %s\n", "total", "", formatRupiah(result.Build.TotalPrice))

	if issues := recommend.CheckCompatibility(result.Build.CPU, result.Build.Motherboard); len(issues) > 0 {
		cmd.Println()
		for _, issue := range issues {
			cmd.Printf("  ! %s\n", issue)
		}
	}
}

// formatRupiah renders a price with '.' thousands separators, e.g. 6.800.000.
func formatRupiah(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := false
	if s != "" && s[0] == '-' {
		neg, s = true, s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
