//go:build !ocr

// Package ocr provides a local recognition source for block reconstruction,
// backed by the Tesseract OCR engine via gosseract.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All functions return ErrOCRNotEnabled.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"errors"

	"github.com/tsawler/blockform/block"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client.
type Client struct{}

// New returns a stub client. Calls on it fail with ErrOCRNotEnabled.
func New() (*Client, error) {
	return &Client{}, nil
}

// Close is a no-op on the stub client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns ErrOCRNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// RecognizeText returns ErrOCRNotEnabled.
func (c *Client) RecognizeText(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// RecognizeBlocks returns ErrOCRNotEnabled.
func (c *Client) RecognizeBlocks(imageData []byte) (block.Collection, error) {
	return nil, ErrOCRNotEnabled
}
