package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CraigKelly/gridpost/dist"
	"github.com/CraigKelly/gridpost/grid"
	"github.com/CraigKelly/gridpost/posterior"
)

var rateCounts []int
var rateExposures []float64
var rateGridMin float64
var rateGridMax float64
var rateGridPts int
var ratePriorName string
var rateFlatBound []float64
var rateGammaShape float64
var rateGammaRate float64
var rateExpRate float64

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Poisson rate inference for count data",
	Long: `Infer a common event rate from Poisson counts observed over known
exposures. The posterior is computed on an evenly spaced rate grid by
normalized trapezoidal quadrature of likelihood times prior.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rateRun()
	},
}

func init() {
	f := rateCmd.Flags()
	f.IntSliceVarP(&rateCounts, "counts", "n", nil, "Observed event counts (one per observation)")
	f.Float64SliceVarP(&rateExposures, "exposures", "t", []float64{1.0}, "Exposure per observation (a single value is broadcast)")
	f.Float64Var(&rateGridMin, "grid-min", 0.0, "Lower edge of the rate grid")
	f.Float64Var(&rateGridMax, "grid-max", 20.0, "Upper edge of the rate grid")
	f.IntVar(&rateGridPts, "points", 200, "Number of grid points")
	f.StringVarP(&ratePriorName, "prior", "p", "flat", "Prior to use: flat, gamma, or exp")
	f.Float64SliceVar(&rateFlatBound, "flat-bound", []float64{0.0, 1e5}, "Lower,upper bound for the flat prior")
	f.Float64Var(&rateGammaShape, "shape", 1.0, "Shape for the gamma prior")
	f.Float64Var(&rateGammaRate, "rate", 1.0, "Rate for the gamma prior")
	f.Float64Var(&rateExpRate, "exp-rate", 1.0, "Rate for the exponential prior")

	rateCmd.MarkFlagRequired("counts")
}

// ratePrior builds the prior selected on the command line.
func ratePrior() (dist.Prior, error) {
	switch ratePriorName {
	case "flat":
		if len(rateFlatBound) != 2 {
			return nil, errors.Errorf("flat prior bound needs exactly 2 values, got %d", len(rateFlatBound))
		}
		return dist.NewFlat(rateFlatBound[0], rateFlatBound[1])
	case "gamma":
		return dist.NewGammaPrior(rateGammaShape, rateGammaRate)
	case "exp":
		return dist.NewExpPrior(rateExpRate)
	}
	return nil, errors.Errorf("unknown prior %q (want flat, gamma, or exp)", ratePriorName)
}

func rateRun() error {
	exposures := rateExposures
	if len(exposures) == 1 && len(rateCounts) > 1 {
		exposures = make([]float64, len(rateCounts))
		for i := range exposures {
			exposures[i] = rateExposures[0]
		}
	}

	data, err := dist.NewCountData(rateCounts, exposures)
	if err != nil {
		return errors.Wrap(err, "invalid count data")
	}
	like, err := dist.NewPoissonRate(data)
	if err != nil {
		return err
	}
	prior, err := ratePrior()
	if err != nil {
		return errors.Wrap(err, "invalid prior")
	}

	g, err := grid.NewLinear(rateGridMin, rateGridMax, rateGridPts)
	if err != nil {
		return errors.Wrap(err, "invalid rate grid")
	}

	log.Infow("evaluating rate posterior",
		"observations", data.Len(),
		"prior", ratePriorName,
		"points", g.Len(),
	)

	lv, err := dist.EvalLikelihood(like, g.Points())
	if err != nil {
		return errors.Wrap(err, "could not evaluate likelihood")
	}
	pv, err := dist.EvalPrior(prior, g.Points())
	if err != nil {
		return errors.Wrap(err, "could not evaluate prior")
	}

	pdf, err := posterior.Normalize(g, pv, lv)
	if err != nil {
		return err
	}

	return reportPosterior("Poisson rate", pdf)
}
