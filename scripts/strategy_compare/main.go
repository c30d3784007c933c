// Command strategy_compare runs several scheduling strategies over the same
// input fixture and reports how their outcomes differ. It also runs each
// strategy twice and flags any non-deterministic output.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/hireloop/interview-api/internal/scheduling"
)

type result struct {
	Algorithm     string
	Scheduled     int
	Unmatched     int
	Warnings      int
	RelaxedCount  int
	Deterministic bool
}

func main() {
	var (
		inputPath string
		only      string
	)
	flag.StringVar(&inputPath, "input", "", "Path to a JSON scheduling input fixture")
	flag.StringVar(&only, "algorithms", "", "Comma-separated algorithm ids (default: all)")
	flag.Parse()

	if inputPath == "" {
		log.Fatal("missing -input")
	}

	input, err := loadInput(inputPath)
	if err != nil {
		log.Fatalf("failed to load input: %v", err)
	}

	selected := selectAlgorithms(only)
	if len(selected) == 0 {
		log.Fatalf("no matching algorithms for %q", only)
	}

	results := make([]result, 0, len(selected))
	unstable := 0
	for _, algo := range selected {
		res := compare(algo, input)
		if !res.Deterministic {
			unstable++
		}
		results = append(results, res)
	}

	printReport(results)

	if unstable > 0 {
		fmt.Printf("Non-deterministic strategies: %d\n", unstable)
		os.Exit(1)
	}
}

func loadInput(path string) (scheduling.Input, error) {
	var input scheduling.Input
	data, err := os.ReadFile(path)
	if err != nil {
		return input, err
	}
	if err := json.Unmarshal(data, &input); err != nil {
		return input, err
	}
	if len(input.Applicants) == 0 {
		return input, fmt.Errorf("no applicants defined in %s", path)
	}
	return input, nil
}

func selectAlgorithms(only string) []scheduling.Algorithm {
	all := scheduling.Algorithms()
	if strings.TrimSpace(only) == "" {
		return all
	}

	wanted := make(map[string]bool)
	for _, id := range strings.Split(only, ",") {
		wanted[strings.TrimSpace(id)] = true
	}

	var out []scheduling.Algorithm
	for _, algo := range all {
		if wanted[algo.ID()] {
			out = append(out, algo)
		}
	}
	return out
}

func compare(algo scheduling.Algorithm, input scheduling.Input) result {
	first := algo.Run(input)
	second := algo.Run(input)

	return result{
		Algorithm:     algo.ID(),
		Scheduled:     len(first.Interviews),
		Unmatched:     len(first.Unmatched),
		Warnings:      len(first.Warnings),
		RelaxedCount:  first.RelaxedCount,
		Deterministic: reflect.DeepEqual(first, second),
	}
}

func printReport(results []result) {
	fmt.Println("Strategy Compare Report")
	fmt.Println("=======================")
	for _, res := range results {
		status := "OK"
		if !res.Deterministic {
			status = "UNSTABLE"
		}
		fmt.Printf("[%s] %s\n", status, res.Algorithm)
		fmt.Printf("  Scheduled: %d | Unmatched: %d | Warnings: %d\n", res.Scheduled, res.Unmatched, res.Warnings)
		if res.RelaxedCount > 0 {
			fmt.Printf("  Relaxed placements: %d\n", res.RelaxedCount)
		}
	}
}
