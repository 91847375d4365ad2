// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/Esmaeelpour/gocap/diagram"
	"github.com/Esmaeelpour/gocap/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var (
	runImage  string
	runEngine string
)

var runCmd = &cobra.Command{
	Use:   "run <file.sec>",
	Short: "Compute the interaction diagram for a section file",
	Long: `Compute the axial-moment interaction diagram for the section defined
in the given .sec file, using the engine(s) selected by the file's sweep
settings, and print the capacity points as a table.

Examples:
  gocap run column.sec
  gocap run column.sec --engine both -o column.png`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runImage, "output", "o", "", "export the diagram to an image file (png, svg, pdf)")
	runCmd.Flags().StringVar(&runEngine, "engine", "", "override the sweep engine: closed-form, fe or both")
}

func runRun(cmd *cobra.Command, args []string) error {
	f, err := inp.Read(args[0])
	if err != nil {
		return err
	}
	if f.Desc != "" {
		io.Pf("%s\n\n", f.Desc)
	}

	engine := f.Sweep.Engine
	if runEngine != "" {
		engine = runEngine
	}

	curves := map[string]*diagram.Curve{}
	if engine == "closed-form" || engine == "both" {
		cf, err := f.ClosedForm()
		if err != nil {
			return err
		}
		c, err := cf.Compute()
		if err != nil {
			return err
		}
		io.Pf("%s\n", c.Table("closed form"))
		curves["closed form"] = c
	}
	if engine == "fe" || engine == "both" {
		fp, err := f.FEPath()
		if err != nil {
			return err
		}
		c, err := fp.Compute()
		if err != nil {
			return err
		}
		io.Pf("%s\n", c.Table("continuation"))
		curves["continuation"] = c
	}
	if len(curves) == 0 {
		return chk.Err("sweep engine %q is not recognized", engine)
	}

	if runImage != "" {
		if err := diagram.SaveImage(curves, runImage); err != nil {
			return err
		}
		io.Pf("figure saved to %s\n", runImage)
	}
	return nil
}
