// Package termio runs gamesetup games in a terminal using tcell. The
// logical surface is scaled onto the terminal's character grid: boxes
// become runs of colored cells, lines and circles become dots.
//
// Terminals report key presses but not releases, so Source synthesizes a
// key-up once a key has gone quiet for HoldTimeout.
package termio
