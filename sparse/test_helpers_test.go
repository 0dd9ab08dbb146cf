// SPDX-License-Identifier: MIT
package sparse_test

import "math"

func nan() float64 { return math.NaN() }
