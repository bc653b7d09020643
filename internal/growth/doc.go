// Package growth derives a plant's growth percentage from task completion counts and
// maps it onto the cumulative rendering bands (seed, sprout, small-plant, mature-plant,
// full-bloom). Everything here is a pure function of its inputs.
package growth
