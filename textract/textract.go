package textract

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"github.com/tsawler/blockform/block"
)

// FromSDK converts Textract SDK blocks to a block.Collection, preserving
// order. Works with the Blocks field of both AnalyzeDocument and
// DetectDocumentText responses.
func FromSDK(blocks []types.Block) block.Collection {
	out := make(block.Collection, 0, len(blocks))
	for _, tb := range blocks {
		b := &block.Block{
			ID:         aws.ToString(tb.Id),
			Kind:       kindFromString(string(tb.BlockType)),
			Text:       aws.ToString(tb.Text),
			Confidence: float64(aws.ToFloat32(tb.Confidence)),
			Row:        int(aws.ToInt32(tb.RowIndex)),
			Column:     int(aws.ToInt32(tb.ColumnIndex)),
		}
		for _, et := range tb.EntityTypes {
			if role, ok := roleFromString(string(et)); ok {
				b.Roles = append(b.Roles, role)
			}
		}
		for _, rel := range tb.Relationships {
			relation, ok := relationFromString(string(rel.Type))
			if !ok {
				continue
			}
			for _, id := range rel.Ids {
				b.Links = append(b.Links, block.Link{Relation: relation, TargetID: id})
			}
		}
		out = append(out, b)
	}
	return out
}

// kindFromString maps a Textract block type name. Types this library
// does not consume become KindUnknown and are ignored downstream.
func kindFromString(s string) block.Kind {
	switch s {
	case "PAGE":
		return block.KindPage
	case "LINE":
		return block.KindLine
	case "WORD":
		return block.KindWord
	case "TABLE":
		return block.KindTable
	case "CELL":
		return block.KindCell
	case "KEY_VALUE_SET":
		return block.KindLabelValueSet
	default:
		return block.KindUnknown
	}
}

// roleFromString maps a Textract entity type name to a role tag.
func roleFromString(s string) (block.Role, bool) {
	switch s {
	case "COLUMN_HEADER":
		return block.RoleColumnHeader, true
	case "KEY":
		return block.RoleLabel, true
	case "VALUE":
		return block.RoleValue, true
	default:
		return 0, false
	}
}

// relationFromString maps a Textract relationship type name. Only CHILD
// and VALUE participate in reconstruction; others (merged cells, answer
// links) are dropped.
func relationFromString(s string) (block.Relation, bool) {
	switch s {
	case "CHILD":
		return block.RelationContains, true
	case "VALUE":
		return block.RelationAssociatedValue, true
	default:
		return 0, false
	}
}
