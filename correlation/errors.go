// SPDX-License-Identifier: MIT
// Package: correlation
//
// errors.go — sentinel errors for the correlation package.
//
// Error policy (explicit and strict, matching the builder package this
// module is grounded on):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context via fmt.Errorf("%s: %w", op, err).
//   - Construction errors (configuration, input) are fatal: Construct
//     returns (nil, err) and nothing is left half-built. Query errors do
//     not exist — LookupPoint/LookupRange are total.
package correlation

import "errors"

// ErrInvalidFanout indicates Config.Fanout < 2.
var ErrInvalidFanout = errors.New("correlation: fanout must be at least 2")

// ErrInvalidErrorBound indicates Config.ErrorBound < 1.
var ErrInvalidErrorBound = errors.New("correlation: error bound must be at least 1")

// ErrInvalidOutlierThreshold indicates Config.OutlierThreshold is outside (0,1].
var ErrInvalidOutlierThreshold = errors.New("correlation: outlier threshold must be in (0,1]")

// ErrInvalidMinNodeSize indicates Config.MinNodeSize < 1.
var ErrInvalidMinNodeSize = errors.New("correlation: min node size must be at least 1")

// ErrInvalidMaxHeight indicates Config.MaxHeight < 1.
var ErrInvalidMaxHeight = errors.New("correlation: max height must be at least 1")

// ErrInvalidModelKind indicates Config.ModelKind is not one of the defined
// ModelKind constants.
var ErrInvalidModelKind = errors.New("correlation: unknown model kind")

// ErrEmptyTrainingSet indicates Construct was called with zero training
// rows; the CI has nothing to learn from.
var ErrEmptyTrainingSet = errors.New("correlation: empty training set")
