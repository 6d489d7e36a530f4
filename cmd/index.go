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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eslsoft/deepgloss/internal/app"
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Feed a corpus file into the semantic index of a domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		domainName, _ := cmd.Flags().GetString("domain")
		corpusPath, _ := cmd.Flags().GetString("corpus")

		corpus, err := os.ReadFile(corpusPath)
		if err != nil {
			return fmt.Errorf("read corpus: %w", err)
		}

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

		count, err := c.Ingest.IndexCorpus(ctx, domainID, string(corpus))
		if err != nil {
			return fmt.Errorf("index corpus: %w", err)
		}
		cmd.Printf("indexed %d sentences into domain %q\n", count, domainName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringP("domain", "d", "", "domain name to index into")
	indexCmd.Flags().StringP("corpus", "c", "", "path to the corpus text file")
	_ = indexCmd.MarkFlagRequired("domain")
	_ = indexCmd.MarkFlagRequired("corpus")
}
