// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package idgen generates identifiers.

# Poll IDs

NewPollID returns a time-ordered UUIDv7:

	id := idgen.NewPollID() // "01968d3e-6b4a-7c1e-9f3a-2b8d5e7f1a0c"

The timestamp prefix keeps ids roughly sortable by creation time and the
random tail keeps two polls created in the same tick apart. No registry of
issued ids is kept.

# Random IDs

GenerateID returns byteLen random bytes, hex encoded. The journal uses it
for vote event rows:

	eventID, err := idgen.GenerateID(16) // 32 hex chars
*/
package idgen
