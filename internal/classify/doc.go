// Package classify holds the per-flow placement policies the organizing
// engine is parameterized with: which files a flow owns and the relative
// destination each file should get. Destinations are returned unsanitized;
// the planner owns filesystem safety.
package classify
