// Package webhook implements the signed Slack webhook endpoints.
//
// The slash-command endpoint authenticates each request with Slack's v0
// signing scheme (HMAC-SHA256 over "v0:<timestamp>:<body>", constant-time
// comparison, five-minute replay window), decodes the url-encoded command
// payload, and answers inside Slack's synchronous window. The reword itself is
// handed to the dispatch package and its result reaches the user through the
// one-time response_url, never through the original response.
//
// # Security Model
//
//   - v0 signatures verified with crypto/subtle (constant-time comparison)
//   - Timestamps outside the replay window rejected in both directions
//   - Body size limits enforced
//   - Generic error bodies on auth failures (no signature details leaked)
//   - Request logging excludes payload content
//
// # Request Flow
//
//  1. HTTP POST arrives at the command path
//  2. Body size checked (413 if too large)
//  3. Signature and timestamp headers verified (401 on failure; 500 when the
//     signing secret is unconfigured)
//  4. Form body decoded; empty text answered synchronously with a usage notice
//  5. Deferred task scheduled; 200 returned with the ephemeral working notice
//
// The interaction endpoint accepts interactive payloads (buttons, shortcuts)
// under the same verification, parses them once into a closed kind set, and
// acknowledges.
package webhook
