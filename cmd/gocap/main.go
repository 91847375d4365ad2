// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gocap computes axial-moment interaction envelopes for reinforced-concrete
// cross-sections, with a closed-form strain-compatibility engine and a
// continuation engine driving a fiber-section solver
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gocap",
	Short: "Axial-moment capacity envelopes for RC cross-sections",
	Long: `gocap computes (P, M) interaction envelopes for reinforced-concrete
cross-sections defined in a .sec JSON file.

Two engines are available:
  closed-form  ACI strain compatibility with the rectangular stress block
  fe           adaptive continuation over a zero-length fiber-section solver`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
