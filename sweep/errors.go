// SPDX-License-Identifier: MIT

package sweep

import "errors"

// ErrBadExponent is returned when the exponent range is empty, negative or
// larger than MaxExpLimit.
var ErrBadExponent = errors.New("sweep: invalid exponent range")

// ErrIncompleteSuite is returned when a Suite lacks a ring, a generator or a kernel.
var ErrIncompleteSuite = errors.New("sweep: incomplete suite")
