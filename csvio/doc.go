// Package csvio reads and writes sample frames as CSV: one row per time
// sample, one column per channel, channel 1 first. Used by the command line
// tool to feed recorded data through a configured filter.
package csvio
