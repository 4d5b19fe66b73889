// Package axis projects data values onto one side of a chart rectangle.
//
// A chart rectangle (ChartRect) is the drawable area left after padding and
// axis label offsets are taken from the canvas; CreateChartRect computes it
// and never lets either side shrink below one pixel.
//
// Units describes the orientation of an axis:
//
//	          start  end  grid offset  value dim
//	X         X1     X2   Y2           x
//	Y         Y2     Y1   X1           y
//
// so the length of a Y axis is Y1−Y2 and pixel y coordinates are obtained as
// rect.Y1 − ProjectValue(v).
//
// Three axis kinds share the Axis interface:
//
//	AutoScale   ticks from bounds.GetBounds over the detected value range.
//	FixedScale  divisor equal intervals (or explicit ticks) over the range.
//	Step        one slot per label; the value is ignored, its index is used.
//
// AutoScale and FixedScale are continuous and also implement Scale:
//
//	ProjectValue(v) = length · (v − min) / (max − min)
//
// Step projects index · length / max(1, n − stretch), where stretch is 1 when
// the last label should sit on the far edge.
package axis
