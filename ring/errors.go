// SPDX-License-Identifier: MIT

package ring

import "errors"

// ErrZeroModulus is returned by NewModular when m == 0.
var ErrZeroModulus = errors.New("ring: modulus must be > 0")
