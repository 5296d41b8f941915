// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var (
	ErrInvalidInput = errors.New("render needs two decoded sources and a positive sample rate")
	ErrTooLong      = errors.New("mix exceeds the maximum render length")
)
