// Package fireworks is a fireworks show built on gamesetup: rockets climb
// from their pads, burst into particles with fading trails, then rise back
// to be launched again.
//
// A show is configured with [Config], usually loaded from YAML with
// [LoadConfig]. [NewFactory] turns a config into a gamesetup.Factory, so a
// show can run in a window, in a terminal, or headless.
package fireworks
