package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CraigKelly/gridpost/dist"
	"github.com/CraigKelly/gridpost/grid"
	"github.com/CraigKelly/gridpost/posterior"
)

var locFamily string
var locObs []float64
var locScale float64
var locGridMin float64
var locGridMax float64
var locGridPts int
var locFlatBound []float64

var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "Normal or Cauchy location inference with a known scale",
	Long: `Infer the location of a Normal (known standard deviation) or Cauchy
(known scale) distribution from scalar observations. The posterior is
computed on an evenly spaced location grid by normalized trapezoidal
quadrature of likelihood times prior.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return locationRun()
	},
}

func init() {
	f := locationCmd.Flags()
	f.StringVarP(&locFamily, "family", "f", "normal", "Sampling family: normal or cauchy")
	f.Float64SliceVarP(&locObs, "obs", "x", nil, "Observed values")
	f.Float64SliceVar(&locFlatBound, "flat-bound", []float64{-1e5, 1e5}, "Lower,upper bound for the flat prior")
	f.Float64VarP(&locScale, "scale", "g", 1.0, "Known scale (sigma for normal, gamma for cauchy)")
	f.Float64Var(&locGridMin, "grid-min", -10.0, "Lower edge of the location grid")
	f.Float64Var(&locGridMax, "grid-max", 20.0, "Upper edge of the location grid")
	f.IntVar(&locGridPts, "points", 200, "Number of grid points")

	locationCmd.MarkFlagRequired("obs")
}

func locationRun() error {
	data, err := dist.NewSampleData(locObs)
	if err != nil {
		return errors.Wrap(err, "invalid observations")
	}

	var like dist.Likelihood
	var name string
	switch locFamily {
	case "normal":
		like, err = dist.NewNormalLocation(data, locScale)
		name = "Normal location"
	case "cauchy":
		like, err = dist.NewCauchyLocation(data, locScale)
		name = "Cauchy location"
	default:
		return errors.Errorf("unknown family %q (want normal or cauchy)", locFamily)
	}
	if err != nil {
		return errors.Wrap(err, "invalid likelihood")
	}

	if len(locFlatBound) != 2 {
		return errors.Errorf("flat prior bound needs exactly 2 values, got %d", len(locFlatBound))
	}
	prior, err := dist.NewFlat(locFlatBound[0], locFlatBound[1])
	if err != nil {
		return errors.Wrap(err, "invalid prior")
	}

	g, err := grid.NewLinear(locGridMin, locGridMax, locGridPts)
	if err != nil {
		return errors.Wrap(err, "invalid location grid")
	}

	log.Infow("evaluating location posterior",
		"family", locFamily,
		"observations", data.Len(),
		"scale", locScale,
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

	return reportPosterior(name, pdf)
}
