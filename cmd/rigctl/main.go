// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

// Command rigctl recommends builds and checks socket compatibility from the
// command line, against a running catalog server or an exported catalog file.
//
//	rigctl recommend --budget 27200000 --catalog-url http://localhost:8080
//	rigctl recommend --budget 15000000 --platform amd --catalog-file catalog.json --json
//	rigctl check --cpu-specs "Socket AM5" --mobo-specs "LGA1700, DDR5"
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "rigctl",
	Short:         "RigBudget build recommendation tool",
	Long:          `rigctl selects one part per component category for a budget and checks CPU/motherboard socket compatibility.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
