package forms

import (
	"strings"

	"github.com/tsawler/blockform/block"
	"github.com/tsawler/blockform/model"
	"github.com/tsawler/blockform/resolver"
)

// Reconstructor rebuilds label/value pairs from LabelValueSet blocks.
type Reconstructor struct {
	res *resolver.Resolver
}

// NewReconstructor creates a reconstructor resolving blocks through res.
func NewReconstructor(res *resolver.Resolver) *Reconstructor {
	return &Reconstructor{res: res}
}

// Pairs reconstructs one pair per label-tagged LabelValueSet block, in
// encounter order. Blocks whose resolved label text is blank are
// discarded entirely. A label without a resolvable associated value
// yields value "" and a nil value confidence.
func (r *Reconstructor) Pairs(blocks block.Collection) []model.LabelValuePair {
	pairs := make([]model.LabelValuePair, 0)

	for _, b := range blocks {
		if b.Kind != block.KindLabelValueSet || !b.HasRole(block.RoleLabel) {
			continue
		}

		label := strings.TrimSpace(r.res.Text(b))
		if label == "" {
			continue
		}

		value, valueConfidence := r.resolveValue(b)

		pairs = append(pairs, model.LabelValuePair{
			Label:           label,
			Value:           strings.TrimSpace(value),
			LabelConfidence: b.Confidence,
			ValueConfidence: valueConfidence,
		})
	}
	return pairs
}

// resolveValue follows the label's AssociatedValue links and resolves
// the first target that exists in the index, regardless of its kind.
func (r *Reconstructor) resolveValue(label *block.Block) (string, *float64) {
	ids := label.Targets(block.RelationAssociatedValue)
	if len(ids) == 0 {
		return "", nil
	}

	valueBlock, ok := r.res.Index().Get(ids[0])
	if !ok {
		return "", nil
	}

	confidence := valueBlock.Confidence
	return r.res.Text(valueBlock), &confidence
}

// Fields folds pairs into an order-preserving label → value map. When a
// label repeats, the first occurrence wins; later duplicates are
// dropped from the map but remain in the pair list.
func Fields(pairs []model.LabelValuePair) *model.FieldMap {
	m := model.NewFieldMap()
	for _, p := range pairs {
		m.SetIfAbsent(p.Label, p.Value)
	}
	return m
}
