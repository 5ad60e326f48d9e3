package domain

import (
	"fmt"

	"github.com/LimoB/clinic-booking-service/pkg/types"
)

// GenerateSlots expands working-hour anchors into the full ordered list of
// bookable slot start times. Each anchor seeds one 60-minute block subdivided
// by the slot duration: anchor "09:00" with a 30-minute duration yields
// "09:00" and "09:30".
//
// The result follows anchor order, ascending within each block, with
// duplicates removed. An empty anchor list yields an empty (non-nil) result.
// A duration that does not evenly divide the block is a schedule
// misconfiguration and returns ErrInvalidSlotDuration.
func GenerateSlots(anchors []types.TimeString, slotDurationMinutes int) ([]types.TimeString, error) {
	if slotDurationMinutes <= 0 || AnchorBlockMinutes%slotDurationMinutes != 0 {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidSlotDuration, slotDurationMinutes)
	}

	slotsPerAnchor := AnchorBlockMinutes / slotDurationMinutes

	slots := make([]types.TimeString, 0, len(anchors)*slotsPerAnchor)
	seen := make(map[types.TimeString]struct{}, len(anchors)*slotsPerAnchor)

	for _, anchor := range anchors {
		if err := anchor.Validate(); err != nil {
			return nil, fmt.Errorf("%w: anchor %q: %v", ErrInvalidAnchor, anchor, err)
		}

		current := anchor
		for i := 0; i < slotsPerAnchor; i++ {
			if _, ok := seen[current]; !ok {
				seen[current] = struct{}{}
				slots = append(slots, current)
			}

			next, err := current.AddMinutes(slotDurationMinutes)
			if err != nil {
				return nil, fmt.Errorf("%w: anchor %q: %v", ErrInvalidAnchor, anchor, err)
			}
			current = next
		}
	}

	return slots, nil
}
