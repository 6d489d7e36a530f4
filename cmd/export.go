/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/eslsoft/deepgloss/internal/app"
	"github.com/eslsoft/deepgloss/internal/entity"
)

// exportRecord is one NDJSON line of the backup stream.
type exportRecord struct {
	Kind     string           `json:"kind"`
	Domain   *entity.Domain   `json:"domain,omitempty"`
	Term     *entity.Term     `json:"term,omitempty"`
	Sentence *entity.Sentence `json:"sentence,omitempty"`
	Match    *entity.Match    `json:"match,omitempty"`
}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export domains, terms, sentences and matches as NDJSON",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		outputPath, _ := cmd.Flags().GetString("output")
		gzipEnabled, _ := cmd.Flags().GetBool("gzip")

		if outputPath == "" {
			outputPath = defaultExportFilename(gzipEnabled)
		}
		if !gzipEnabled && outputPath != "-" && strings.HasSuffix(strings.ToLower(outputPath), ".gz") {
			gzipEnabled = true
		}

		c, cleanup, err := app.Initialize()
		if err != nil {
			return err
		}
		defer cleanup()

		var (
			writer   = cmd.OutOrStdout()
			closeFns []func() error
		)
		if outputPath != "-" {
			if dir := filepath.Dir(outputPath); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
			}
			file, openErr := os.Create(outputPath)
			if openErr != nil {
				return fmt.Errorf("create export file: %w", openErr)
			}
			writer = file
			closeFns = append(closeFns, file.Close)
		}
		if gzipEnabled {
			gz := gzip.NewWriter(writer)
			writer = gz
			closeFns = append([]func() error{gz.Close}, closeFns...)
		}
		defer func() {
			for _, closer := range closeFns {
				if cerr := closer(); cerr != nil && err == nil {
					err = cerr
				}
			}
		}()

		if err := exportAll(cmd.Context(), c, writer); err != nil {
			return fmt.Errorf("export: %w", err)
		}

		if outputPath == "-" {
			cmd.Println("export complete: written to stdout")
		} else {
			cmd.Printf("export complete: %s\n", outputPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "export file path, use - for stdout")
	exportCmd.Flags().Bool("gzip", false, "gzip-compress the output")
}

func defaultExportFilename(gzipEnabled bool) string {
	ts := time.Now().UTC().Format("20060102-150405")
	filename := fmt.Sprintf("deepgloss-backup-%s.jsonl", ts)
	if gzipEnabled {
		filename += ".gz"
	}
	return filename
}

func exportAll(ctx context.Context, c *app.Container, w io.Writer) error {
	enc := json.NewEncoder(w)

	domains, err := c.Vocab.ListDomains(ctx)
	if err != nil {
		return err
	}
	for i := range domains {
		if err := enc.Encode(exportRecord{Kind: "domain", Domain: &domains[i]}); err != nil {
			return err
		}
	}

	for _, domain := range domains {
		terms, err := c.Vocab.Terms(ctx, domain.ID, false)
		if err != nil {
			return err
		}
		for i := range terms {
			if err := enc.Encode(exportRecord{Kind: "term", Term: &terms[i]}); err != nil {
				return err
			}
		}

		sentences, err := c.Vocab.Sentences(ctx, domain.ID)
		if err != nil {
			return err
		}
		for i := range sentences {
			if err := enc.Encode(exportRecord{Kind: "sentence", Sentence: &sentences[i]}); err != nil {
				return err
			}
		}

		for _, term := range terms {
			linked, err := c.Matches.SentencesForTerm(ctx, term.ID)
			if err != nil {
				return err
			}
			for _, s := range linked {
				match := entity.Match{TermID: term.ID, SentenceID: s.ID}
				if err := enc.Encode(exportRecord{Kind: "match", Match: &match}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
