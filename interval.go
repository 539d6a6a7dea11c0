// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

package nets

import (
	"fmt"
	"strconv"
)

// Interval is the type of the static firing-time constraint carried by a
// transition. EFT is always finite; LFT is meaningless (and ignored) when
// Infinite is true. The zero value is the point interval [0,0]; the trivial
// interval [0,*[ is Interval{Infinite: true}.
type Interval struct {
	EFT      int
	LFT      int
	Infinite bool
}

// Trivial reports whether i is the default interval [0,*[.
func (i Interval) Trivial() bool {
	return i.EFT == 0 && i.Infinite
}

// Valid reports whether i is a well-formed interval, i.e. 0 <= EFT and
// (Infinite or EFT <= LFT).
func (i Interval) Valid() bool {
	if i.EFT < 0 {
		return false
	}
	if i.Infinite {
		return true
	}
	return i.EFT <= i.LFT
}

// AdmitsStep reports whether a clock currently valued at v may still advance
// by one unit of time without leaving i, i.e. v+1 <= LFT (always true when i
// is right-infinite).
func (i Interval) AdmitsStep(v int) bool {
	if i.Infinite {
		return true
	}
	return v+1 <= i.LFT
}

func (i Interval) String() string {
	if i.Infinite {
		return fmt.Sprintf("[%d,*[", i.EFT)
	}
	return "[" + strconv.Itoa(i.EFT) + "," + strconv.Itoa(i.LFT) + "]"
}
