// Package soap implements the Debbugs SOAP wire format: request envelope
// construction and response projection into domain values.
//
// The package is purely functional: building a request or decoding a response
// touches no shared state and performs no I/O, so every function is safe to
// call concurrently. HTTP transport lives in pkg/debbugs.
//
// # Requests
//
// Each Debbugs operation has a request constructor returning an etree
// document ready for serialization:
//
//	doc := soap.GetStatusRequest([]soap.BugID{12345, 67890})
//	body, err := doc.WriteToBytes()
//
// Arguments follow the SOAP-RPC positional convention: the method element's
// children are named arg0..argN-1 in the order supplied. Methods with a
// name/value calling convention (get_bugs) interleave marker and value
// arguments; see SearchQuery.
//
// # Responses
//
// Response parsers take the raw response text and the operation that produced
// it, unwrap the envelope, and project the payload:
//
//	ids, err := soap.ParseGetBugsResponse(text)
//	reports, err := soap.ParseGetStatusResponse(text)
//
// Decode failures are reported through the sentinel errors in this package
// (ErrMalformedDocument, ErrStructureMismatch, ErrMissingElement,
// ErrMissingField), testable with errors.Is.
//
// # Leniency
//
// Integer list entries that fail to parse are skipped, and every BugReport
// field is projected best-effort (a bad field decodes to absent, never to a
// record-level error). Bug log entries are strict: missing header, msg_num,
// or body, a non-empty attachments element, and any unrecognized child are
// decode errors.
package soap
