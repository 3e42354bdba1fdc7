// Package engine owns the authoritative game state and exposes the
// operations a presentation layer calls: reset, placement, move execution
// with legality validation, terminal checks, and an update stream. It also
// runs complete AI-vs-AI games for the experiments harness.
package engine

// MaxMoves caps a runaway AI-vs-AI game.
const MaxMoves = 10000
