package blockform

import (
	"fmt"
	"strings"

	"github.com/tsawler/blockform/block"
	"github.com/tsawler/blockform/resolver"
)

// Warning describes a non-fatal data-quality finding in the input
// collection. Warnings never change the reconstruction result; every
// anomaly they describe is absorbed by a defensive default (dangling
// links contribute nothing, coordinate-less cells are skipped, and so
// on). They exist so callers can tell a clean document from a messy one.
type Warning struct {
	Message string
}

// FormatWarnings joins warning messages into a single readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Message
	}
	return strings.Join(msgs, "; ")
}

// scanCollection makes one advisory pass over the collection and
// reports findings that the reconstruction will silently absorb.
func scanCollection(blocks block.Collection, ix *resolver.Index) []Warning {
	var warnings []Warning

	seen := make(map[string]bool, len(blocks))
	duplicates := 0
	dangling := 0
	bareCells := 0

	for _, b := range blocks {
		if seen[b.ID] {
			duplicates++
		}
		seen[b.ID] = true

		for _, l := range b.Links {
			if _, ok := ix.Get(l.TargetID); !ok {
				dangling++
			}
		}

		if b.Kind == block.KindCell && !b.HasCoordinates() {
			bareCells++
		}
	}

	if duplicates > 0 {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("%d duplicate block id(s); later blocks shadow earlier ones", duplicates),
		})
	}
	if dangling > 0 {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("%d link(s) reference blocks absent from the collection", dangling),
		})
	}
	if bareCells > 0 {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("%d cell block(s) without grid coordinates; excluded from grid placement", bareCells),
		})
	}

	return warnings
}
