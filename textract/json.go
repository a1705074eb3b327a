package textract

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/tsawler/blockform/block"
)

// response mirrors the JSON shape of Textract AnalyzeDocument and
// DetectDocumentText responses. Only the fields this library consumes
// are declared; everything else is ignored by the decoder.
type response struct {
	Blocks []jsonBlock `json:"Blocks"`
}

type jsonBlock struct {
	Id            string             `json:"Id"`
	BlockType     string             `json:"BlockType"`
	Text          string             `json:"Text"`
	Confidence    float64            `json:"Confidence"`
	RowIndex      int                `json:"RowIndex"`
	ColumnIndex   int                `json:"ColumnIndex"`
	EntityTypes   []string           `json:"EntityTypes"`
	Relationships []jsonRelationship `json:"Relationships"`
}

type jsonRelationship struct {
	Type string   `json:"Type"`
	Ids  []string `json:"Ids"`
}

// Decode converts a raw Textract response payload to a block.Collection.
// It accepts the JSON form of both AnalyzeDocument and DetectDocumentText
// output, e.g. a response body persisted by another system.
func Decode(data []byte) (block.Collection, error) {
	var resp response
	if err := sonic.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decoding textract response: %w", err)
	}

	out := make(block.Collection, 0, len(resp.Blocks))
	for _, jb := range resp.Blocks {
		b := &block.Block{
			ID:         jb.Id,
			Kind:       kindFromString(jb.BlockType),
			Text:       jb.Text,
			Confidence: jb.Confidence,
			Row:        jb.RowIndex,
			Column:     jb.ColumnIndex,
		}
		for _, et := range jb.EntityTypes {
			if role, ok := roleFromString(et); ok {
				b.Roles = append(b.Roles, role)
			}
		}
		for _, rel := range jb.Relationships {
			relation, ok := relationFromString(rel.Type)
			if !ok {
				continue
			}
			for _, id := range rel.Ids {
				b.Links = append(b.Links, block.Link{Relation: relation, TargetID: id})
			}
		}
		out = append(out, b)
	}
	return out, nil
}
