package dataset

import "errors"

// ErrInvalidDistribution indicates GenerateMicro was called with a
// distribution name other than "linear" or "sigmoid".
var ErrInvalidDistribution = errors.New("dataset: distribution must be \"linear\" or \"sigmoid\"")

// ErrInvalidOutlierRatio indicates GenerateMicro was called with an
// outlierRatio outside [0, 1].
var ErrInvalidOutlierRatio = errors.New("dataset: outlier ratio must be in [0,1]")

// ErrTruncatedRecord indicates a binary record reader hit EOF partway
// through a fixed-width record.
var ErrTruncatedRecord = errors.New("dataset: truncated binary record")
