// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/tomtom215/rigbudget/internal/models"
	"github.com/tomtom215/rigbudget/internal/recommend"
)

// errIncompatible makes "check" exit non-zero on a socket mismatch.
var errIncompatible = errors.New("parts are not compatible")

var (
	checkCPUSpecs  string
	checkMoboSpecs string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check CPU and motherboard socket compatibility",
	Long: `Compares the socket tokens (LGA####, AM#) found in the CPU and
motherboard spec strings. Specs without a recognizable socket are not
reported as a problem.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkCPUSpecs, "cpu-specs", "", "CPU spec string, e.g. \"Socket AM5, 8 Cores\"")
	checkCmd.Flags().StringVar(&checkMoboSpecs, "mobo-specs", "", "motherboard spec string, e.g. \"LGA1700, DDR5\"")
	_ = checkCmd.MarkFlagRequired("cpu-specs")
	_ = checkCmd.MarkFlagRequired("mobo-specs")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cpu := &models.Component{Type: models.TypeCPU, Specs: checkCPUSpecs}
	mobo := &models.Component{Type: models.TypeMotherboard, Specs: checkMoboSpecs}

	issues := recommend.CheckCompatibility(cpu, mobo)
	if len(issues) == 0 {
		cmd.Println("Compatible")
		return nil
	}
	for _, issue := range issues {
		cmd.Println(issue)
	}
	return errIncompatible
}
