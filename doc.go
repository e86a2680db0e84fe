// Package linechart draws a single time series as a line chart.
//
// It uses gonum.org/v1/plot/vg for all drawing and adds what a dashboard
// chart needs: a device pixel ratio aware viewport, a gradient area below
// the line and complete, stateless repaints.
//
// Geometry
//
// All geometry is given in device-independent pixels (DIP) with the
// origin in the top left corner of the container and y growing down.
// The plot area is the container minus its Padding:
//   - Point i of n is drawn at x = left + plotWidth/(n-1)*i.
//   - A value v is drawn at y = top + plotHeight*(max-v)/(max-min).
//   - If all values are equal they are drawn on the horizontal midline.
//
// The backing store has floor(width*dpr) x floor(height*dpr) pixels. The
// device pixel ratio is applied once per render pass as a scaling of the
// canvas, everything else is drawn in DIP.
//
// Layers
//
// A chart is painted in this order, each layer on top of the previous:
//   1. Clearing of the backing store.
//   2. Grid lines and value labels.
//   3. The area below the line, filled with a vertical gradient.
//   4. The line.
//   5. A marker at each point.
//   6. The x labels.
//   7. An optional header with title, subtitle and legend.
//
// A series which cannot be drawn as a line (fewer than two points,
// differing label and value counts or non-finite values) still gets the
// grid; the layers 3 to 5 are skipped.
//
// The geoms live in package geom, a render pass and the repaint
// coordination in package chart.
package linechart
