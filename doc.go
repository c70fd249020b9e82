// Package stripchart draws interactive strip charts of (x,y) traces.
//
// A Chart owns two axes, a set of traces and the state of pointer
// interaction. Every layout pass scans the traces for the extents of
// autoscaled axes, picks nice tick values, negotiates the plot area
// against title, labels and legend and derives the affine transform
// between data and device pixels. Rendering goes to any gonum/plot
// draw.Canvas, so the same chart can be painted into a window buffer or
// exported as PNG, SVG or PDF.
//
// Scales
//
// An axis scales in one of three modes:
//   - AutoTight   The extent is the data range, ticks lie inside.
//   - AutoLoose   The extent grows to the enclosing tick values.
//   - Manual      The extent set by SetRange, e.g. after a zoom.
//
// If only one axis autoscales it only considers samples which lie inside
// the range of the other axis.
//
// Interaction
//
// Hosts forward pointer events to OnPointerDown, OnPointerMove,
// OnPointerUp and OnPointerLeave. A primary drag zooms into the dragged
// rectangle (shift: horizontally only, ctrl: vertically only), a middle
// drag pans, a double click returns to autoscaling and a secondary press
// cancels a zoom or requests a context menu. Changes are reported
// through Chart.Notify.
//
// Traces
//
// Sample storage lives in package trace, decimated drawing of lines and
// markers in package geom.
package stripchart
