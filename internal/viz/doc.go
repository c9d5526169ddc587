// Package viz is the terminal front end for a playback engine.
//
// [Model] is a Bubble Tea program bound to a [playback.Engine]. It narrates
// the step under the cursor and maps keys onto transport controls:
//
//	Space - Play/Pause
//	→ / L - Step forward
//	← / H - Step back
//	R     - Reset to the first step
//	G / g - Jump to last / first step
//	+ / - - Faster / slower
//	T     - Cycle color themes
//	Q     - Quit
//
// Engine notifications reach the program through a [Bridge]. Where no
// terminal is attached, [Narrator] prints the same narration line by line.
package viz
