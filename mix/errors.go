// SPDX-License-Identifier: EPL-2.0

package mix

import "errors"

var ErrInvalidGain = errors.New("gain must be a finite non-negative number")
