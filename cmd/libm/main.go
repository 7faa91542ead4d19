// Package main runs a vector/matrix scenario and prints the report.
//
// Usage:
//
//	libm                        # run the embedded walk-through
//	libm -scenario demo.yaml    # run a scenario file
//	libm -precision 2 -verb g   # change float rendering
//	libm -snapshot              # also print the final environment as YAML
//
// Scenario format: see package scenario.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/libm/format"
	"github.com/katalvlaran/libm/scenario"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("libm: ")

	path := flag.String("scenario", "", "scenario YAML file (default: embedded walk-through)")
	precision := flag.Int("precision", format.DefaultPrecision, "digits per element")
	verb := flag.String("verb", string(format.DefaultVerb), "float notation: f, e or g")
	snapshot := flag.Bool("snapshot", false, "print the final environment as YAML")
	flag.Parse()

	if *precision < 0 {
		log.Fatalf("-precision must be >= 0, got %d", *precision)
	}
	if len(*verb) != 1 || (*verb != "f" && *verb != "e" && *verb != "g") {
		log.Fatalf("-verb must be f, e or g, got %q", *verb)
	}

	sc, err := loadScenario(*path)
	if err != nil {
		log.Fatalf("%v", err)
	}

	r := scenario.NewRunner(os.Stdout, format.WithPrecision(*precision), format.WithVerb((*verb)[0]))
	if err := r.Run(sc); err != nil {
		log.Fatalf("run: %v", err)
	}
	if *snapshot {
		if err := r.Snapshot(os.Stdout); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
	}
}

// loadScenario reads the scenario at path, or the embedded walk-through when path is empty.
func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	sc, err := scenario.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return sc, nil
}
