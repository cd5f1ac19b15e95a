// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifier and token generation utilities.

# Record IDs

Database rows use random UUIDs:

	id := auth.NewID()

# Suggester Tags

Suggestions show an anonymous public tag instead of the voter identifier:

	tag, err := auth.GenerateSuggesterTag() // "User_k3x9q0z1m"

# Voter Identifiers

Clients send a stable X-User-Identifier header when suggesting or voting.
The server only stores its salted HMAC-SHA256:

	hash, err := auth.HashIdentifier(identifier, cfg.IdentifierSalt)

HashIdentifier trims whitespace and returns ErrEmptyIdentifier for an empty
value. The hash is deterministic, so the unique (suggestion, identifier)
constraint still blocks repeat votes.
*/
package auth
