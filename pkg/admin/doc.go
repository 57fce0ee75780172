// Package admin serves the mocktool HTTP API.
//
// The API exposes the proto template extractor to other tools and to the
// mock tool UI. Every route lives under /api/v1/mocktool/proto:
//
//	POST /templates   extract a JSON template for every message
//	POST /check       compile the source strictly and list diagnostics
//	POST /validate    validate a JSON payload against a message
//	POST /selection   apply selected templates to a mock API request
//	GET  /health      liveness
//
// Proto source may be posted as raw text, as JSON {"source": "..."}, or as
// a multipart form with a "file" field. Nothing is persisted.
package admin
