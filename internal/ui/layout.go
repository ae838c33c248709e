package ui

import "time"

// Frame geometry.
const (
	// FrameTitle is embedded in the top border.
	FrameTitle = "PHOSPHOR"

	// frameBorderRows and frameBorderCols are taken by the border itself.
	frameBorderRows = 2
	frameBorderCols = 2

	// screenMarginCols is the blank column left of every line. Horizontal
	// jitter moves text into or out of it.
	screenMarginCols = 1
)

// Timing constants.
const (
	// CursorBlink is how long the cursor stays in each phase.
	CursorBlink = 530 * time.Millisecond
)
