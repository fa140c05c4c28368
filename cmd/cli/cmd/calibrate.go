// Package cmd - calibrate command
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"land-audit/core/density"
)

var calibrateSamples string

// calibrateCmd estimates model parameters from empirical observations
var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Estimate D0 and g from empirical density samples",
	Long: `Fit the Bertaud model to observed (distance, density) samples via
least-squares regression on the log-linearized gradient formula.

Samples are given as comma-separated distance=density pairs:
  land-audit calibrate --samples "0=10,5=6.065,10=3.678"`,
	RunE: runCalibrate,
}

func init() {
	calibrateCmd.Flags().StringVar(&calibrateSamples, "samples", "", "comma-separated distance=density pairs")
	_ = calibrateCmd.MarkFlagRequired("samples")
}

func runCalibrate(cmd *cobra.Command, args []string) error {
	samples, err := parseSamples(calibrateSamples)
	if err != nil {
		return err
	}

	d0, g := density.Calibrate(samples)
	if d0 == 0 && g == 0 {
		fmt.Println("Insufficient data: need at least two samples with positive density at distinct distances.")
		return nil
	}

	fmt.Printf("Estimated D0: %.3f\n", d0)
	fmt.Printf("Estimated g:  %.4f\n", g)
	return nil
}

func parseSamples(raw string) ([]density.Sample, error) {
	parts := strings.Split(raw, ",")
	samples := make([]density.Sample, 0, len(parts))
	for _, part := range parts {
		pair := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(pair) != 2 {
			return nil, fmt.Errorf("invalid sample %q: expected distance=density", part)
		}
		dist, err := strconv.ParseFloat(pair[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid distance %q: %w", pair[0], err)
		}
		dens, err := strconv.ParseFloat(pair[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid density %q: %w", pair[1], err)
		}
		samples = append(samples, density.Sample{DistanceKm: dist, Density: dens})
	}
	return samples, nil
}
