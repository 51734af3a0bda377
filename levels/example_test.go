// SPDX-License-Identifier: MIT

package levels_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gradual/levels"
)

// ExampleMerge shows the union of two level sets.
func ExampleMerge() {
	a := levels.MustNew(1, 0.8, 0.4)
	b := levels.MustNew(1, 0.95, 0.2, 0.1)
	fmt.Println(levels.Merge(a, b))
	// Output:
	// [1 0.95 0.8 0.4 0.2 0.1]
}

// ExampleValidate shows fail-fast validation.
func ExampleValidate() {
	err := levels.Validate([]float64{0.8, 0.5})
	fmt.Println(errors.Is(err, levels.ErrMissingTop))
	// Output:
	// true
}
