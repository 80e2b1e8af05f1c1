// Command worddist loads a newline-delimited word list into an M-Tree
// under the Levenshtein metric and repeatedly prompts for a word, printing
// the ten nearest entries in the dictionary.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hupe1980/mtree"
	"github.com/hupe1980/mtree/metric"
)

func main() {
	dictPath := flag.String("dict", "", "path to a newline-delimited dictionary file (required)")
	k := flag.Int("k", 10, "number of nearest words to report")
	minCap := flag.Int("min-cap", 4, "minimum node capacity")
	flag.Parse()

	if *dictPath == "" {
		log.Fatal("worddist: -dict is required")
	}

	words, err := loadWords(*dictPath)
	if err != nil {
		log.Fatalf("worddist: %v", err)
	}

	tree, err := mtree.New(*minCap, metric.Levenshtein)
	if err != nil {
		log.Fatalf("worddist: %v", err)
	}

	fmt.Printf("--- Build ---\nWords: %d\n", len(words))
	start := time.Now()
	for _, w := range words {
		tree.Add(w)
	}
	fmt.Printf("Seconds: %.2f\n\n", time.Since(start).Seconds())

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("Enter a word (or blank to quit):\n> ")
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			return
		}

		start := time.Now()
		q := tree.NearestByLimit(word, *k)
		elapsed := time.Since(start)

		for r, ok := q.Next(); ok; r, ok = q.Next() {
			fmt.Printf("  %-20s distance %v\n", r.Item, r.Distance)
		}
		fmt.Printf("Seconds: %.8f\n\n> ", elapsed.Seconds())
	}
}

func loadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w != "" {
			words = append(words, w)
		}
	}
	return words, scanner.Err()
}
