// SPDX-License-Identifier: MIT

package graded

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/gradual/levels"
)

const (
	headerLevel  = "Level"
	headerObject = "Object"
)

// Table renders g as a two-column table:
//
//	RL-<name>
//	Level | Object
//	------+---------
//	1.0   | input1
//	0.8   | input2
//
// Each column is as wide as its longest entry plus 2, and never narrower
// than its header label. Rows follow the stored (descending) order.
func Table(name string, g Graded) string {
	set := g.Levels()
	lvCells := make([]string, set.Len())
	objCells := make([]string, set.Len())
	lw, ow := 0, 0
	for i := 0; i < set.Len(); i++ {
		l := set.At(i)
		x, _ := g.Lookup(l)
		lvCells[i] = levels.Format(l)
		objCells[i] = fmt.Sprint(x)
		lw = max(lw, utf8.RuneCountInString(lvCells[i]))
		ow = max(ow, utf8.RuneCountInString(objCells[i]))
	}
	lw = max(lw+2, len(headerLevel))
	ow = max(ow+2, len(headerObject))

	lines := make([]string, 0, set.Len()+3)
	lines = append(lines,
		"RL-"+name,
		fmt.Sprintf("%-*s | %-*s", lw, headerLevel, ow, headerObject),
		strings.Repeat("-", lw)+"-+-"+strings.Repeat("-", ow),
	)
	for i := range lvCells {
		lines = append(lines, fmt.Sprintf("%-*s | %-*s", lw, lvCells[i], ow, objCells[i]))
	}

	return strings.Join(lines, "\n")
}

// TypeName returns the short name used in table titles: the declared
// name without package path when there is one, the type literal otherwise.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	if n := t.Name(); n != "" {
		return n
	}

	return t.String()
}
