// Package scopeguard provides deterministic, one-shot resource cleanup.
//
// A Guard pairs with defer to guarantee release on every exit path,
// including early returns and error paths, while still allowing an explicit
// early release (Run) or a cancellation (Dismiss) when ownership moves
// elsewhere. Guards are not safe for concurrent use; each guard belongs to
// the goroutine that created it.
package scopeguard
