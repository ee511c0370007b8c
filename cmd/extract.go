package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iksnae/data-donation/internal"
	"github.com/iksnae/data-donation/internal/export"
	"github.com/spf13/cobra"
)

var (
	extractFormat   string
	extractOut      string
	extractPlatform string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract FILE",
	Short: "Extract tables from an export file",
	Long: `Run the extractors over an export file and print or save the resulting
tables without donating anything.

This is the offline preview of exactly what the consent form would show,
including the extraction log.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		donation, err := donationFor(extractPlatform)
		if err != nil {
			return err
		}

		exporter, err := export.NewExporter(extractFormat)
		if err != nil {
			return err
		}

		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var bundle internal.Bundle
		err = internal.ShowProgress(cmd.Context(), "Extracting tables", func() error {
			doc, parseErr := internal.ParseDocument(data)
			if parseErr != nil {
				return fmt.Errorf("failed to parse %s: %w", path, parseErr)
			}
			var log internal.Log
			results := donation.Registry.Run(doc, &log)
			bundle = internal.BuildBundle(results, &log)
			return nil
		})
		if err != nil {
			return err
		}

		if extractOut == "" {
			return exporter.Export(bundle, cmd.OutOrStdout())
		}

		outPath := extractOut
		if !strings.Contains(filepath.Base(outPath), ".") {
			outPath = fmt.Sprintf("%s.%s", outPath, exporter.Extension())
		}
		f, err := os.Create(outPath)
		if err != nil {
			return &internal.ExportError{Format: extractFormat, Path: outPath, Err: err}
		}
		defer func() { _ = f.Close() }()

		if err := exporter.Export(bundle, f); err != nil {
			return &internal.ExportError{Format: extractFormat, Path: outPath, Err: err}
		}
		internal.LogInfo("Wrote %s", outPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractFormat, "format", "json", "Output format (json, jsonl, yaml, md)")
	extractCmd.Flags().StringVar(&extractOut, "out", "", "Output file (default: stdout)")
	extractCmd.Flags().StringVar(&extractPlatform, "platform", "tiktok", "Platform whose export to process")
}
