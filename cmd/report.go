package cmd

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/CraigKelly/gridpost/posterior"
)

// normTolerance is the relative tolerance every posterior must meet before
// we report anything from it.
const normTolerance = 0.01

// reportPosterior validates the posterior and prints its summary statistics.
func reportPosterior(name string, pdf *posterior.PDF) error {
	if err := pdf.Validate(normTolerance); err != nil {
		return errors.Wrap(err, "posterior failed the normalization check")
	}

	lo, err := pdf.Quantile(0.025)
	if err != nil {
		return err
	}
	hi, err := pdf.Quantile(0.975)
	if err != nil {
		return err
	}

	gridLo, gridHi := pdf.Grid().Bounds()

	fmt.Printf("Posterior: %s\n", name)
	fmt.Printf("Grid:      [%g, %g] at %d points\n", gridLo, gridHi, pdf.Len())
	fmt.Printf("Mode:      %.6g\n", pdf.Mode())
	fmt.Printf("Mean:      %.6g\n", pdf.Mean())
	fmt.Printf("Std Dev:   %.6g\n", pdf.StdDev())
	fmt.Printf("95%% CI:    [%.6g, %.6g]\n", lo, hi)

	return nil
}
