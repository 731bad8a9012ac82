// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package idgen generates identifiers.

# Record IDs

GenerateID returns a random UUID string used as the primary key of events,
images, participants and votes:

	eventID := idgen.GenerateID()

# Join Codes

GenerateJoinCode returns a five digit numeric code that participants type
in (or scan as a QR code) to find an event:

	code, err := idgen.GenerateJoinCode() // e.g. "48213"

Codes are drawn from crypto/rand and are not derived from the event id.
Collisions are possible; the events table has a UNIQUE constraint and the
caller regenerates on conflict.

IsJoinCode checks the shape of a code before it is looked up.
*/
package idgen
