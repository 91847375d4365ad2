// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// Version is the release tag
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocap",
	Run: func(cmd *cobra.Command, args []string) {
		io.Pf("gocap v%s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
