package text

import (
	"strings"

	"github.com/tsawler/blockform/block"
	"github.com/tsawler/blockform/model"
	"github.com/tsawler/blockform/resolver"
)

// Collector extracts text lines from a block collection.
type Collector struct {
	res *resolver.Resolver
}

// NewCollector creates a collector resolving text through res.
func NewCollector(res *resolver.Resolver) *Collector {
	return &Collector{res: res}
}

// Lines returns one TextLine per Line block, in input order. Blocks of
// every other kind are ignored.
func (c *Collector) Lines(blocks block.Collection) []model.TextLine {
	lines := make([]model.TextLine, 0)
	for _, b := range blocks {
		if b.Kind != block.KindLine {
			continue
		}
		lines = append(lines, model.TextLine{
			Text:       c.res.Text(b),
			Confidence: b.Confidence,
		})
	}
	return lines
}

// FullText joins line texts with newlines and trims trailing
// whitespace. An empty line list yields "".
func FullText(lines []model.TextLine) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line.Text)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), " \t\r\n")
}

// AverageConfidence is the unweighted mean of line confidences, 0 when
// there are no lines.
func AverageConfidence(lines []model.TextLine) float64 {
	if len(lines) == 0 {
		return 0
	}
	var sum float64
	for _, line := range lines {
		sum += line.Confidence
	}
	return sum / float64(len(lines))
}
