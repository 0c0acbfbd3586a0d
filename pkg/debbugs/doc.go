// Package debbugs provides a client for the Debbugs SOAP interface, the
// query API of the Debian bug tracking system and its derivatives.
//
// # Basic Usage
//
// Create a client and query the tracker:
//
//	client := debbugs.NewClient(nil) // bugs.debian.org
//	ids, err := client.NewestBugs(ctx, 10)
//
//	query := &debbugs.SearchQuery{Package: "debbugs", Severity: "serious"}
//	ids, err = client.GetBugs(ctx, query)
//
//	reports, err := client.GetStatus(ctx, ids)
//	for id, report := range reports {
//	    fmt.Println(id, report)
//	}
//
// # Errors
//
// A structured error reported by the service decodes into a *FaultError.
// Responses that cannot be decoded surface the sentinel errors of pkg/soap.
// Transport failures (connection, TLS, timeout) pass through from net/http
// unmodified. The client never retries.
//
// # Logging
//
// Components accept a *slog.Logger via SetLogger; without one the client is
// silent. Request and response bodies are logged at debug level.
package debbugs
