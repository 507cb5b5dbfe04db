package layout

import (
	"golang.org/x/exp/constraints"
)

func maxOf[T constraints.Ordered](args ...T) T {
	if len(args) == 0 {
		var zero T
		return zero
	}
	maxValue := args[0]
	for _, value := range args[1:] {
		if value > maxValue {
			maxValue = value
		}
	}
	return maxValue
}
