package window

import (
	"fmt"

	"github.com/cwbudde/algo-signal/dsp/core"
)

var (
	errUnknownType = fmt.Errorf("window: %w: unknown window type", core.ErrInvalidParameter)
	errEmptyBuffer = fmt.Errorf("window: %w", core.ErrEmptyInput)
)
