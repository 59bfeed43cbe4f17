// ObjectId CLI - Command-line tool for ObjectId generation and inspection
//
// Usage:
//   objectid generate [flags]    Generate ObjectIds
//   objectid parse <hex>         Parse and inspect an ID
//   objectid bounds <time>       Print range-scan bounds for a point in time
//   objectid bench               Run performance benchmarks
//
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sxyafiq/objectid"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "generate", "gen", "g":
		cmdGenerate(os.Args[2:])
	case "parse", "p":
		cmdParse(os.Args[2:])
	case "bounds":
		cmdBounds(os.Args[2:])
	case "bench", "benchmark", "b":
		cmdBench(os.Args[2:])
	case "version", "--version", "-v":
		fmt.Printf("objectid CLI version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ObjectId CLI - Compact, globally-orderable 12-byte identifiers

Usage:
  objectid <command> [flags]

Commands:
  generate, gen, g      Generate ObjectIds
  parse, p              Parse and inspect an ID
  bounds                Print Min/Max-style scan bounds for a timestamp
  bench, b              Run performance benchmarks
  version               Show version information
  help                  Show this help message

Examples:
  objectid generate -n 5
  objectid generate -random -json
  objectid parse 65D4A8F0C3B2A190807F6E5D
  objectid bounds 2024-02-20T12:30:45Z
`)
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	count := fs.Int("n", 1, "number of IDs to generate")
	random := fs.Bool("random", false, "use the randomized strategy")
	asJSON := fs.Bool("json", false, "output as a JSON array")
	fs.Parse(args)

	if *count <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -n must be positive")
		os.Exit(1)
	}

	var ids []objectid.ID
	if *random {
		ids = objectid.NewRandomBatch(*count)
	} else {
		ids = objectid.NewBatch(*count)
	}

	if *asJSON {
		out, err := json.MarshalIndent(ids, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}
	for _, id := range ids {
		fmt.Println(id.Hex())
	}
}

func cmdParse(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objectid parse <hex>")
		os.Exit(1)
	}

	id, err := objectid.ParseHex(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ts, machine, process, counter := id.Parts()
	fmt.Printf("ID:         %s\n", id.Hex())
	fmt.Printf("Timestamp:  %d (%s)\n", ts, id.Time().Format(time.RFC3339))
	fmt.Printf("Machine:    0x%06X\n", machine)
	fmt.Printf("Process:    %d\n", process)
	fmt.Printf("Counter:    %d\n", counter)
	fmt.Printf("Hash:       0x%08X\n", id.Hash())
	fmt.Printf("Age:        %s\n", time.Since(id.Time()).Round(time.Second))
}

// cmdBounds prints the lowest and highest IDs carrying the given second,
// useful as inclusive bounds when range-scanning ID-keyed storage.
func cmdBounds(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objectid bounds <RFC3339 time>")
		os.Exit(1)
	}

	t, err := time.Parse(time.RFC3339, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	low, err := objectid.FromTime(t)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	high, err := objectid.FromParts(low.Timestamp(), objectid.MaxMachine, objectid.MaxProcess, objectid.MaxCounter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Low:  %s\n", low.Hex())
	fmt.Printf("High: %s\n", high.Hex())
}

func cmdBench(args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	total := fs.Int("n", 1_000_000, "number of IDs to generate")
	fs.Parse(args)

	fmt.Printf("Generating %d IDs (machine/process strategy)...\n", *total)
	start := time.Now()
	for i := 0; i < *total; i++ {
		_ = objectid.New()
	}
	elapsed := time.Since(start)
	fmt.Printf("  %v total, %.0f ns/ID, %.2fM IDs/sec\n",
		elapsed.Round(time.Millisecond),
		float64(elapsed.Nanoseconds())/float64(*total),
		float64(*total)/elapsed.Seconds()/1e6)

	fmt.Printf("Generating %d IDs (randomized strategy)...\n", *total)
	start = time.Now()
	for i := 0; i < *total; i++ {
		_ = objectid.NewRandom()
	}
	elapsed = time.Since(start)
	fmt.Printf("  %v total, %.0f ns/ID, %.2fM IDs/sec\n",
		elapsed.Round(time.Millisecond),
		float64(elapsed.Nanoseconds())/float64(*total),
		float64(*total)/elapsed.Seconds()/1e6)
}
