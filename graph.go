package famdash

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
)

// TemperatureGraph draws the day's hourly temperature curve into a canvas
// region: a black polyline over a light grid, hour tick labels, high/low
// annotations, and a red marker on the bundle's current hour. Everything is
// drawn with palette colors only.
type TemperatureGraph struct {
	// Face renders tick labels and the high/low annotations.
	Face font.Face
	// LineWidth is the polyline stroke width in pixels (default 3).
	LineWidth int
}

// Hour ticks shown on the x axis.
var graphTicks = []struct {
	hour  int
	label string
}{
	{0, "12am"},
	{6, "6am"},
	{12, "12pm"},
	{18, "6pm"},
	{23, "11pm"},
}

// Draw renders the forecast curve into region. Forecasts with fewer than
// two hourly points leave the region empty apart from its axes.
func (g TemperatureGraph) Draw(c *Canvas, region image.Rectangle, f Forecast, nowHour int) {
	lineWidth := g.LineWidth
	if lineWidth <= 0 {
		lineWidth = 3
	}

	// Plot area, leaving room for labels left and below.
	labelH := c.LineHeight(g.Face)
	plot := image.Rect(
		region.Min.X+60,
		region.Min.Y+10,
		region.Max.X-15,
		region.Max.Y-labelH-12,
	)
	if plot.Dx() < 40 || plot.Dy() < 40 {
		return
	}

	// Axes.
	c.Line(plot.Min.X, plot.Min.Y, plot.Min.X, plot.Max.Y, Black, 1)
	c.Line(plot.Min.X, plot.Max.Y, plot.Max.X, plot.Max.Y, Black, 1)

	if len(f.HourlyTemps) < 2 || len(f.Hours) != len(f.HourlyTemps) {
		return
	}

	lo, hi := f.HourlyTemps[0], f.HourlyTemps[0]
	for _, t := range f.HourlyTemps {
		if t < lo {
			lo = t
		}
		if t > hi {
			hi = t
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	// Pad the vertical range so the curve doesn't ride the axes.
	lo -= span * 0.15
	hi += span * 0.15
	span = hi - lo

	lastHour := f.Hours[len(f.Hours)-1]
	if lastHour == 0 {
		lastHour = 1
	}
	toXY := func(hour int, temp float64) (int, int) {
		x := plot.Min.X + hour*(plot.Dx()-1)/lastHour
		y := plot.Max.Y - int(float64(plot.Dy()-1)*(temp-lo)/span)
		return x, clamp(y, plot.Min.Y, plot.Max.Y)
	}

	// Horizontal gridlines at quarter heights.
	for i := 1; i <= 3; i++ {
		gy := plot.Min.Y + i*plot.Dy()/4
		c.Line(plot.Min.X+1, gy, plot.Max.X, gy, Gray, 1)
	}

	// Tick marks and labels.
	for _, tick := range graphTicks {
		tx, _ := toXY(tick.hour, lo)
		c.Line(tx, plot.Max.Y, tx, plot.Max.Y+5, Black, 1)
		tw := c.TextWidth(g.Face, tick.label)
		lx := clamp(tx-tw/2, region.Min.X, region.Max.X-tw)
		c.DrawText(lx, plot.Max.Y+8, tick.label, g.Face, Black)
	}

	// The polyline.
	px, py := toXY(f.Hours[0], f.HourlyTemps[0])
	for i := 1; i < len(f.HourlyTemps); i++ {
		nx, ny := toXY(f.Hours[i], f.HourlyTemps[i])
		c.Line(px, py, nx, ny, Black, lineWidth)
		px, py = nx, ny
	}

	// High/Low annotations, top-left of the plot.
	high := fmt.Sprintf("High: %d%s", f.High, f.Unit)
	low := fmt.Sprintf("Low: %d%s", f.Low, f.Unit)
	c.DrawText(plot.Min.X+10, plot.Min.Y+4, high, g.Face, Black)
	c.DrawText(plot.Min.X+10, plot.Min.Y+4+labelH, low, g.Face, Black)

	// Red marker on the current hour.
	for i, h := range f.Hours {
		if h == nowHour {
			mx, my := toXY(h, f.HourlyTemps[i])
			c.FillCircle(mx, my, 7, Red)
			break
		}
	}
}
