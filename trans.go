// Scale Transformations

package linechart

// A Transformation maps values of one interval onto another.
type Transformation struct {
	Name  string
	Trans func(from, to Interval, x float64) float64
}

// LinearTrans implements a linear mapping of from to to. The intervals
// may be reversed, e.g. to map values onto a y-axis pointing down.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
}
