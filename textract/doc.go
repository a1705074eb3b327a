// Package textract adapts Amazon Textract output to a block.Collection.
//
// Textract's AnalyzeDocument and DetectDocumentText APIs return the flat,
// relationship-linked block list this library reconstructs from. This
// package performs the translation only; it never calls the Textract API.
// Callers obtain a response however they like (AWS SDK call, stored JSON
// payload, test fixture) and hand it over:
//
//	out, err := client.AnalyzeDocument(ctx, input) // aws-sdk-go-v2
//	// ...
//	blocks := textract.FromSDK(out.Blocks)
//	result, warnings, err := blockform.FromBlocks(blocks).Result()
//
// Raw JSON payloads (e.g. responses persisted by another system) decode
// the same way:
//
//	blocks, err := textract.Decode(payload)
//
// Block types, entity types, and relationship types this library does not
// consume are mapped to their Unknown values and ignored downstream;
// links to them simply dangle, which the reconstruction tolerates.
package textract
