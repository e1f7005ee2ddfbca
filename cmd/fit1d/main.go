// fit1d reads newline-separated numbers from stdin and fits a Gaussian
// to their distribution by unbinned maximum likelihood.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fitdist/go-fitdist/cost"
	"github.com/fitdist/go-fitdist/fit"
	"github.com/fitdist/go-fitdist/model"
	"github.com/fitdist/go-fitdist/sample"
)

func main() {
	s := readInput(os.Stdin)

	lh, err := cost.NewUnbinnedLH(model.Gaussian{}, s, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	res, err := fit.Run(lh, map[string]float64{
		"mean":  s.Mean(),
		"sigma": s.StdDev(),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("N %d  -logL %.6g  (%s)\n", len(s.Xs), res.Cost, res.Status)
	for i, name := range res.Names {
		fmt.Printf("%8s %.6g ± %.6g\n", name, res.X[i], res.Err[i])
	}
}

func readInput(r io.Reader) (s sample.Sample) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		s.Xs = append(s.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return
}
