// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting holds the rules of a live rating event: registration,
vote ingestion, aggregation and progression.

# Engine

An Engine wraps a Repository (normally *store.Store) and a notify.Publisher:

	engine := voting.NewEngine(store.New(db), publisher)

The engine keeps nothing in memory between calls. Every answer is computed
from the store, so any number of server processes can share one database.

# Progression

Events move draft → active → closed. SetStatus applies admin changes;
closed is terminal. Advance moves the current-image pointer and closes the
event when it steps past the last image:

	resp, err := engine.Advance(ctx, eventID)
	// resp.IsComplete reports the event is now closed

# Votes

CastVote upserts one rating per (event, image, voter). Resubmitting
overwrites the stars; there is never a second row.

# Polling

Snapshot (participants), Presentation (big screen) and Leaderboard are the
read paths. Snapshot registers the polling voter as a participant first;
a failure there is logged and the snapshot is still returned.

# Errors

Every returned error wraps one of ErrValidation, ErrNotFound,
ErrInvalidTransition or ErrStore. Use errors.Is to classify.
*/
package voting
