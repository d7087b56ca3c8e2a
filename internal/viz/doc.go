// Package viz renders the engine's diagnostic outputs for a terminal:
//
//   - [Header]: run status line (running/paused, mode, time scale, central body)
//   - [Report]: the universe state report with colored body labels
//   - [Plot]: ASCII chart of a series, e.g. the separation of two bodies
//   - [Sparkline]: compact single-line chart
package viz
