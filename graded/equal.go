// SPDX-License-Identifier: MIT

package graded

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	clone "github.com/huandu/go-clone"
)

// exportAll lets cmp descend into unexported fields of user types.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal is the default equality: structural comparison through go-cmp,
// honouring Equal methods declared by the compared types.
func Equal(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()

	return cmp.Equal(a, b, exportAll)
}

// deepCopy returns an independent copy of v.
func deepCopy[T any](v T) T {
	c, ok := clone.Clone(v).(T)
	if !ok {
		return v
	}

	return c
}
