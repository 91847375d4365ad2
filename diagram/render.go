// Copyright 2024 The Gocap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Table renders the curve as a fixed-width text table
func (o *Curve) Table(title string) string {
	s := io.Sf("%s\n", title)
	s += io.Sf("%14s %14s\n", "P", "M")
	for i := 0; i < o.Len(); i++ {
		s += io.Sf("%14.4f %14.4f\n", o.P[i], o.M[i])
	}
	return s
}

// line colours, one per curve in name order
var palette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
}

// SaveImage plots the named curves, moment on x and axial load on y, and
// saves the figure; the file extension selects the format as supported by
// gonum/plot
func SaveImage(curves map[string]*Curve, filename string) error {
	p := plot.New()
	p.Title.Text = "Interaction Diagram"
	p.X.Label.Text = "Moment"
	p.Y.Label.Text = "Axial load"
	p.Add(plotter.NewGrid())

	names := make([]string, 0, len(curves))
	for n := range curves {
		names = append(names, n)
	}
	sort.Strings(names)

	for k, n := range names {
		c := curves[n]
		pts := make(plotter.XYs, c.Len())
		for i := 0; i < c.Len(); i++ {
			pts[i] = plotter.XY{X: c.M[i], Y: c.P[i]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = palette[k%len(palette)]
		p.Add(line)
		p.Legend.Add(n, line)
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, filename)
}
