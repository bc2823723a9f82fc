package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	sim "github.com/cpusim/cpusim/sim"
)

// promptAlgorithm shows the numbered algorithm menu and reads one selection.
func promptAlgorithm(in io.Reader, out io.Writer) (sim.Algorithm, error) {
	fmt.Fprintln(out, "Welcome to CPU Scheduler")
	fmt.Fprintln(out, "The following algorithms are available")
	printAlgorithms(out, false)
	fmt.Fprint(out, "Select a number: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, fmt.Errorf("reading selection: %w", err)
	}
	a, err := sim.ParseAlgorithm(line)
	if err != nil {
		return 0, fmt.Errorf("invalid selection, try again: %w", err)
	}
	return a, nil
}

// printAlgorithms writes "N. Title" per algorithm, optionally with its flag name.
func printAlgorithms(out io.Writer, withNames bool) {
	for _, a := range sim.Algorithms() {
		if withNames {
			fmt.Fprintf(out, "%d. %s (%s)\n", int(a), a.Title(), a)
			continue
		}
		fmt.Fprintf(out, "%d. %s\n", int(a), a.Title())
	}
}
