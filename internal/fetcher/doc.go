// Package fetcher is the HTTP client for the news backend.
//
// A [Client] issues a single GET per call against a configured base URL and
// decodes the reply into the caller's value. [Fetch] is the typed entry point
// used by the flows: it returns the backend [model.Envelope] unmodified and
// leaves inspecting Envelope.Success to the caller.
//
// Two failure kinds are kept apart:
//
//   - transport failures (DNS, refused connection, timeout, non-2xx status,
//     undecodable body) are returned as *[TransportError]
//   - application failures arrive as a decoded envelope with Success false
//     and a nil error
//
// There is no retry: every call is exactly one attempt.
package fetcher
