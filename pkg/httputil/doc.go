// Package httputil fetches remote word sources over HTTP.
//
// The `count --url` path reads text from a URL instead of a local
// file. [Client] wraps the fetch with the behaviors a CLI wants when
// pulling from the network:
//
//   - Response caching through a [cache.Cache], keyed by URL, so
//     repeated counts of the same source skip the network.
//   - Automatic retry with exponential backoff for transient failures
//     (network errors, 5xx responses, 429 rate limits).
//   - Observability hooks for request and response events.
//
// Non-2xx responses other than the retryable set fail immediately. A
// 404 maps to the not-found sentinel so callers can distinguish a
// missing source from a flaky one.
package httputil
