package engine

import "errors"

// ErrLoopRunning is returned when Run is called on a loop that is already running
var ErrLoopRunning = errors.New("tick loop already running")
