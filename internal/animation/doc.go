// Package animation computes the reveal effects as lazy, time-indexed
// sequences, independent of the pipeline and of any renderer.
//
// A [TextScript] assigns every character of the revealed message the moment
// it becomes visible. [Confetti] is a small particle simulation stepped once
// per frame. [DecryptingMessages] rotates the status line shown while the
// assets are decrypted. The terminal UI samples all three on its own ticks.
package animation
