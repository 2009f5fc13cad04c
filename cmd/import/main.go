// Command import converts a shape script into a JSON scene document that
// shapegrid (or any other tool) can read back.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"shapegrid/scene"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		inputFile = fs.String("i", "", "Input scene file (.shapes script or .json)")
		output    = fs.String("o", "", "Output file path (default: stdout)")
		check     = fs.Bool("check", false, "Also draw the scene to make sure every shape fits")
	)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}

	if *inputFile == "" {
		fmt.Fprintf(stderr, "Error: input file required (-i)\n")
		fs.Usage()
		return 1
	}

	s, err := scene.Load(*inputFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error importing scene: %v\n", err)
		return 1
	}

	if *check {
		if _, err := s.Render(); err != nil {
			fmt.Fprintf(stderr, "Error checking scene: %v\n", err)
			return 1
		}
	}

	jsonData, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "Error converting to JSON: %v\n", err)
		return 1
	}
	jsonData = append(jsonData, '\n')

	if *output != "" {
		if err := os.WriteFile(*output, jsonData, 0644); err != nil {
			fmt.Fprintf(stderr, "Error writing output file: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Successfully imported scene to %s\n", *output)
		return 0
	}

	stdout.Write(jsonData)
	return 0
}
