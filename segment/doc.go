// Package segment partitions a flat coordinate stream and its parallel
// per-point data into contiguous runs ("segments") separated by data holes.
//
// Input is a flat slice of x,y pairs plus one Data entry per pair. A single
// left-to-right scan opens a new Segment whenever a valid point follows a
// hole (or starts the stream) and, with WithIncreasingX, whenever x does not
// grow. WithFillHoles ignores holes so that every valid point lands in one
// Segment.
//
// Guarantees:
//   - no Segment contains a hole
//   - points keep their original relative order
//   - all-hole or empty input yields zero Segments
package segment
