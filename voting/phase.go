// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"

	"github.com/danielhkuo/quickly-vote/models"
)

type phaseController struct {
	current models.Phase
}

func (c *phaseController) require(op string, want models.Phase) error {
	if c.current != want {
		return wrongPhase(op, want, c.current)
	}
	return nil
}

// checkAdvance verifies that from -> to is the next legal step from the current phase.
func (c *phaseController) checkAdvance(op string, from, to models.Phase) error {
	if err := c.require(op, from); err != nil {
		return err
	}
	if next, ok := from.Next(); !ok || next != to {
		return fmt.Errorf("%w: %s cannot move from %s to %s", ErrWrongPhase, op, from, to)
	}
	return nil
}

func (c *phaseController) set(next models.Phase) {
	c.current = next
}
