// +build ignore

package main

import (
	"fmt"
	"os"

	"github.com/vdobler/linechart"
	"github.com/vdobler/linechart/chart"
	"github.com/vdobler/linechart/data"
)

func main() {
	sty := linechart.DefaultStyle(12)
	sty.Header.Title = "User Growth Over Time"
	sty.Header.Subtitle = "Monthly active users"
	sty.Header.Legend = "Active Users"

	for _, dpr := range []float64{1, 2} {
		target := linechart.NewRasterTarget()
		c, err := chart.New(target, &sty)
		if err != nil {
			panic(err)
		}
		c.SetSeries(data.Growth())
		c.Resize(chart.Size{Width: 600, Height: 300, DPR: dpr})
		if err := c.Ready(); err != nil {
			panic(err)
		}
		write(target, fmt.Sprintf("testdata/growth-%gx.png", dpr))
	}

	// Too few points: only the grid is drawn.
	target := linechart.NewRasterTarget()
	vp := sty.Viewport(600, 300, 1)
	s, err := target.Surface(vp)
	if err != nil {
		panic(err)
	}
	p := chart.Render(s, vp, data.New([]string{"Jan"}, []float64{4200}), &sty)
	fmt.Println("single point:", p.Invalid)
	write(target, "testdata/growth-single.png")
}

func write(target *linechart.RasterTarget, name string) {
	w, err := os.Create(name)
	if err != nil {
		panic(err)
	}
	defer w.Close()
	if err = target.Encode(w, "png"); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
