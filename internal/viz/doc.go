// Package viz renders simulation results in the terminal.
//
// Three surfaces consume an [engine.Result]:
//
//   - [FidelityChart] / [CorrelationChart]: static asciigraph dashboards
//     with a QEC-activation marker
//   - [RenderSummary]: styled pre/post-activation report panel
//   - [NewLiveModel]: Bubble Tea replay that animates the run hour by hour
package viz
