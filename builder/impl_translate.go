// SPDX-License-Identifier: MIT
// Package: meshcomp/builder
//
// impl_translate.go — Translate(d, cons...): shift nested constructors.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Translate runs cons with every emitted point shifted by d. Nested
// Translates accumulate. Use it to keep fixtures from touching each other.
func Translate(d r3.Vec, cons ...Constructor) Constructor {
	return func(b *Buffer, cfg builderConfig) error {
		inner := cfg
		inner.offset = r3.Add(cfg.offset, d)
		for i, fn := range cons {
			if fn == nil {
				return fmt.Errorf("Translate: nil constructor at index %d: %w", i, ErrConstructFailed)
			}
			if err := fn(b, inner); err != nil {
				return err
			}
		}

		return nil
	}
}
