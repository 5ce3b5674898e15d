// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package main

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("rigctl version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
