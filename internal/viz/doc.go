// Package viz is the terminal front end of the step player, built on Bubble
// Tea. An algorithm menu leads to an input line and then to the player
// screen: coloured bars for the current step, its narration, the recursion
// tree for merge and quick sort, and a side panel with running counts.
//
// # Key Bindings
//
//	→ ] l   - Next step
//	← [ h   - Previous step
//	g / G   - First / last step
//	Space   - Play or pause automatic stepping
//	R       - Reset to the initial position
//	E       - Edit the input sequence
//	T       - Cycle colour themes
//	?       - Toggle full help
//	Esc     - Back to the menu
//
// [TextRenderer] and [PlainStep] render the same steps without a terminal.
package viz
