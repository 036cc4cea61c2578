package parameter

import "time"

// Speed curve: tick interval is SpeedScale / speed
const (
	// SpeedScale is the numerator of the tick interval
	SpeedScale = 10 * time.Second

	// SpeedBase is the starting speed (100ms per tick)
	SpeedBase = 100

	// SpeedStep is added to speed for every fruit eaten
	SpeedStep = 1
)

// Grid sizing
const (
	// GridDefaultSize is used when the terminal is too small to derive a size
	GridDefaultSize = 20

	// GridCellWidth is the number of terminal columns per grid cell
	GridCellWidth = 3

	// GridReservedRows is the number of terminal rows not available to the grid
	GridReservedRows = 4
)
