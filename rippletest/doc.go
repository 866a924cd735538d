// Package rippletest provides deterministic virtual-time infrastructure for
// testing stream timing: a Schedule that drains actions in frame order, cold
// and hot replay sources driven by pre-declared timelines, and watchers that
// record delivered events tagged with their arrival frame.
package rippletest
