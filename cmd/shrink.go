package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CraigKelly/gridpost/hier"
	"github.com/CraigKelly/gridpost/rand"
	"github.com/CraigKelly/gridpost/shrinkage"
)

var shrinkEntities int
var shrinkAlpha float64
var shrinkBeta float64
var shrinkExposure float64

var shrinkCmd = &cobra.Command{
	Use:   "shrink",
	Short: "Simulate a gamma-Poisson population and summarize shrinkage",
	Long: `Simulate a population of entities whose latent event rates come from
a shared Gamma prior, observe a Poisson count for each, and pair the naive
rate estimates (count/exposure) with the conjugate posterior means. The
posterior means pull toward the population mean - that pull is the
shrinkage this table shows.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return shrinkRun()
	},
}

func init() {
	f := shrinkCmd.Flags()
	f.IntVarP(&shrinkEntities, "entities", "m", 20, "Number of entities to simulate")
	f.Float64Var(&shrinkAlpha, "alpha", 3.0, "Shape of the population gamma prior")
	f.Float64Var(&shrinkBeta, "beta", 0.5, "Rate of the population gamma prior")
	f.Float64VarP(&shrinkExposure, "exposure", "t", 2.0, "Exposure per entity")
}

func shrinkRun() error {
	if shrinkEntities < 1 {
		return errors.Errorf("need at least 1 entity, got %d", shrinkEntities)
	}

	pop, err := hier.NewPopulation(shrinkAlpha, shrinkBeta)
	if err != nil {
		return errors.Wrap(err, "invalid population prior")
	}

	src, err := rand.NewSource(randomSeed)
	if err != nil {
		return err
	}

	exposures := make([]float64, shrinkEntities)
	for i := range exposures {
		exposures[i] = shrinkExposure
	}

	log.Infow("simulating population",
		"entities", shrinkEntities,
		"alpha", shrinkAlpha,
		"beta", shrinkBeta,
		"seed", randomSeed,
	)

	sample, err := pop.Simulate(exposures, src)
	if err != nil {
		return errors.Wrap(err, "simulation failed")
	}

	pts, err := pop.ShrinkagePoints(sample)
	if err != nil {
		return err
	}

	fmt.Printf("Population prior: Gamma(%g, %g), mean rate %.4g\n", pop.Alpha, pop.Beta, pop.PriorMean())
	fmt.Printf("%8s %10s %10s %10s\n", "entity", "true", "naive", "bayes")
	for i, p := range pts {
		if !p.Valid {
			fmt.Printf("%8d %10.4f %10s %10.4f\n", i, p.Truth, "-", p.Bayes)
			continue
		}
		fmt.Printf("%8d %10.4f %10.4f %10.4f\n", i, p.Truth, p.Naive, p.Bayes)
	}

	paired := shrinkage.Paired(pts)
	fmt.Printf("\n%d of %d entities paired for display\n", len(paired), len(pts))

	return nil
}
