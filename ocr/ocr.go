//go:build ocr

// Package ocr provides a local recognition source for block reconstruction,
// backed by the Tesseract OCR engine via gosseract.
//
// This requires Tesseract to be installed on the system. On macOS, install
// via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/blockform/block"
)

// Client wraps Tesseract for recognition operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for recognition.
// Multiple languages can be specified as a "+" separated string (e.g.
// "eng+fra"). Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeText performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeText(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// RecognizeBlocks performs OCR on image data and returns the result as
// a block collection: one Line block per recognized text line, holding
// Contains links to its Word blocks. Line confidence is the mean of its
// word confidences. The collection feeds directly into reconstruction:
//
//	blocks, err := client.RecognizeBlocks(imageData)
//	// ...
//	text, warnings, err := blockform.FromBlocks(blocks).Text()
func (c *Client) RecognizeBlocks(imageData []byte) (block.Collection, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxesVerbose()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	var (
		out      block.Collection
		line     *block.Block
		lineSum  float64
		lineKey  string
		words    []string
		wordBlks block.Collection
	)

	flush := func() {
		if line == nil {
			return
		}
		line.Text = strings.Join(words, " ")
		if len(words) > 0 {
			line.Confidence = lineSum / float64(len(words))
		}
		out = append(out, line)
		out = append(out, wordBlks...)
		line, words, wordBlks, lineSum = nil, nil, nil, 0
	}

	for _, box := range boxes {
		word := strings.TrimSpace(box.Word)
		if word == "" {
			continue
		}

		key := fmt.Sprintf("%d/%d/%d", box.BlockNum, box.ParNum, box.LineNum)
		if line == nil || key != lineKey {
			flush()
			line = &block.Block{
				ID:   uuid.NewString(),
				Kind: block.KindLine,
			}
			lineKey = key
		}

		wb := &block.Block{
			ID:         uuid.NewString(),
			Kind:       block.KindWord,
			Text:       word,
			Confidence: box.Confidence,
		}
		line.Links = append(line.Links, block.Link{
			Relation: block.RelationContains,
			TargetID: wb.ID,
		})
		lineSum += box.Confidence
		words = append(words, word)
		wordBlks = append(wordBlks, wb)
	}
	flush()

	return out, nil
}
