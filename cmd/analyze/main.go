// Command analyze classifies one HTML document from a file, stdin, or a
// URL and prints the analyzed tree as JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/bytedance/sonic"

	"github.com/pagelift/pagelift/backend/internal/fetch"
	"github.com/pagelift/pagelift/backend/internal/logging"
	"github.com/pagelift/pagelift/backend/internal/recognition"
)

func main() {
	file := flag.String("file", "", "HTML file to analyze (default: stdin)")
	url := flag.String("url", "", "URL to fetch and analyze")
	patterns := flag.String("patterns", "", "YAML pattern overlay file")
	workers := flag.Int("workers", 1, "Concurrent subtree workers")
	pretty := flag.Bool("pretty", false, "Indent JSON output")
	flag.Parse()

	htmlStr, err := readInput(*file, *url)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	registry, err := recognition.RegistryWithOverlay(*patterns)
	if err != nil {
		log.Fatalf("Failed to build registry: %v", err)
	}

	analyzer := recognition.NewAnalyzer(registry,
		recognition.WithWorkers(*workers),
		recognition.WithLogger(logging.NewNop()),
	)

	report, err := analyzer.AnalyzeDocument(htmlStr)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	var out []byte
	if *pretty {
		out, err = sonic.MarshalIndent(report, "", "  ")
	} else {
		out, err = sonic.Marshal(report)
	}
	if err != nil {
		log.Fatalf("Failed to serialize report: %v", err)
	}
	fmt.Println(string(out))
}

func readInput(file, url string) (string, error) {
	switch {
	case url != "":
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		return fetch.New().Document(ctx, url)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
