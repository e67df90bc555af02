package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool
var randomSeed int64

// log is the CLI-layer logger. The engine packages stay pure and never log.
var log *zap.SugaredLogger

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gridpost",
	Short: "Grid-based Bayesian inference for 1-D models",
	Long: `gridpost performs direct numerical Bayesian inference over small
one-dimensional parameter grids. Among other features:

  - Poisson rate inference for count data with exposures
  - Normal and Cauchy location inference with a known scale
  - A gamma-Poisson population simulator with a shrinkage summary
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewDevelopmentConfig()
		if !verbose {
			cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		}

		logger, err := cfg.Build()
		if err != nil {
			return err
		}
		log = logger.Sugar()

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging (default is much more parsimonious)")
	rootCmd.PersistentFlags().Int64VarP(&randomSeed, "seed", "r", 1, "Random seed to use")

	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(locationCmd)
	rootCmd.AddCommand(shrinkCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
