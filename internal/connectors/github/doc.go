// Package github implements the driven SearchAPI port against the GitHub
// repository search endpoint.
//
// The client wraps go-github for request construction, base URL handling
// and error decoding, but deliberately fetches the response body as raw
// JSON: field mapping and validation belong to the domain decoder, which
// rejects a whole page when any item is malformed.
//
// # Authentication
//
// Requests are unauthenticated by default. A personal access token can be
// supplied (config key github.token) and is attached as a static OAuth2
// token source. There are no OAuth flows.
//
// # Request pacing
//
// The search endpoint has a much smaller budget than the rest of the API
// (10 requests/minute unauthenticated, 30/minute with a token). A token
// bucket paces outbound requests to stay inside that budget. Responses
// that still arrive rate-limited are surfaced as errors; there is no
// retry or backoff.
//
// # Pagination
//
// Only the first page is ever fetched. The Link response header is parsed
// for the rel="last" page number, which is reported to the caller for
// display purposes only.
package github
