// Package viz provides terminal output for race runs: asciigraph distance
// plots for stored runs and a Bubble Tea live view that advances a race day
// by day on screen.
//
// # Key Bindings (live view)
//
//	Space - Pause/Resume
//	Q     - Quit
package viz
