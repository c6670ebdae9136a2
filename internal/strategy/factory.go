package strategy

import (
	"fmt"
)

// NewStrategy creates a strategy executor by name.
func NewStrategy(name string) (Strategy, error) {
	switch name {
	case NameLumpSum:
		return NewLumpSumStrategy(), nil
	case NameDCA:
		return NewDCAStrategy(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want %q or %q)", name, NameLumpSum, NameDCA)
	}
}

// All returns both executors in comparison order.
func All() []Strategy {
	return []Strategy{NewLumpSumStrategy(), NewDCAStrategy()}
}
