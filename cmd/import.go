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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eslsoft/deepgloss/internal/app"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import sentences with audio references from a CSV file",
	Long: `Import reads a CSV file with columns content_en,audio_ref and upserts
each row into a domain. Existing sentences with the same English content get
their audio reference refreshed instead of a duplicate row.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		domainName, _ := cmd.Flags().GetString("domain")
		csvPath, _ := cmd.Flags().GetString("file")

		file, err := os.Open(csvPath)
		if err != nil {
			return fmt.Errorf("open csv: %w", err)
		}
		defer file.Close()

		c, cleanup, err := app.Initialize()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		domainID, err := c.Vocab.EnsureDomain(ctx, domainName)
		if err != nil {
			return fmt.Errorf("ensure domain: %w", err)
		}

		reader := csv.NewReader(file)
		reader.FieldsPerRecord = -1
		imported := 0
		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("read csv row: %w", err)
			}
			if len(record) == 0 {
				continue
			}

			content := strings.TrimSpace(record[0])
			if content == "" || strings.EqualFold(content, "content_en") {
				continue
			}
			audioRef := ""
			if len(record) > 1 {
				audioRef = strings.TrimSpace(record[1])
			}

			if err := c.Sentences.UpsertAudio(ctx, domainID, content, audioRef); err != nil {
				return fmt.Errorf("upsert sentence: %w", err)
			}
			imported++
		}

		cmd.Printf("imported %d sentences into domain %q\n", imported, domainName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("domain", "d", "", "domain name to import into")
	importCmd.Flags().StringP("file", "f", "", "path to the CSV file")
	_ = importCmd.MarkFlagRequired("domain")
	_ = importCmd.MarkFlagRequired("file")
}
