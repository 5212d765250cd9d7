package reasonify

import (
	"github.com/riverfjs/reasonify-go/internal/types"
)

// Block is the machine-readable record of one rendered reasoning span.
type Block = types.Block

// BlockTypeReasoning is the Type carried by every Block.
const BlockTypeReasoning = types.BlockTypeReasoning

// Document is the final output of Render and Process.
type Document struct {
	// Text is the rendered document: reasoning blocks followed by the
	// cleaned visible text.
	Text string `json:"document"`
	// Residual is the visible text with every span removed and
	// whitespace normalised.
	Residual string `json:"residual"`
	// Blocks is the structured form of the rendered reasoning blocks,
	// in discovery order.
	Blocks []Block `json:"blocks"`
	// TotalDuration is the sum of all block durations, in seconds.
	TotalDuration int `json:"total_duration"`
}

// HasReasoning reports whether any reasoning block was rendered.
func (d *Document) HasReasoning() bool {
	return d != nil && len(d.Blocks) > 0
}

// StartTags returns the start literal of every rendered block, in order.
func (d *Document) StartTags() []string {
	if d == nil {
		return nil
	}
	tags := make([]string, len(d.Blocks))
	for i, b := range d.Blocks {
		tags[i] = b.StartTag
	}
	return tags
}
