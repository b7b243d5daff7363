// Command aoc2021 runs the registered Advent of Code 2021 solvers.
//
//	aoc2021 16                 # solve day 16 with its configured input
//	aoc2021 18 --input -       # read day 18 from stdin
//	aoc2021 all --workers 4    # every day, pairwise searches on 4 workers
//	aoc2021 list               # show registered days
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
