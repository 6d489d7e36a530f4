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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eslsoft/deepgloss/internal/app"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load a term list and corpus file into a domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		domainName, _ := cmd.Flags().GetString("domain")
		wordsPath, _ := cmd.Flags().GetString("words")
		corpusPath, _ := cmd.Flags().GetString("corpus")

		words, err := readWordList(wordsPath)
		if err != nil {
			return fmt.Errorf("read word list: %w", err)
		}
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

		stored, err := c.Ingest.Process(ctx, domainID, words, string(corpus))
		if err != nil {
			return fmt.Errorf("process corpus: %w", err)
		}
		cmd.Printf("ingested %d terms, stored %d sentences into domain %q\n", len(words), stored, domainName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringP("domain", "d", "", "domain name to load into")
	ingestCmd.Flags().StringP("words", "w", "", "path to the term list, one word per line")
	ingestCmd.Flags().StringP("corpus", "c", "", "path to the corpus text file")
	_ = ingestCmd.MarkFlagRequired("domain")
	_ = ingestCmd.MarkFlagRequired("words")
	_ = ingestCmd.MarkFlagRequired("corpus")
}

func readWordList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	return words, scanner.Err()
}
