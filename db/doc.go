// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same statements run on PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite).

# Tables

  - audit_record: the append-only audit log of a voting session

Session state is not stored in tables of its own. It is rebuilt on startup by
replaying audit_record in seq order.

# Columns

	seq             gapless sequence number, primary key
	id              record UUID
	kind            RegisteredParticipant | ProposalRegistered | PhaseChanged | VoteCast
	identity        participant, proposal author, or voter
	proposal_index  ProposalRegistered / VoteCast
	description     ProposalRegistered
	previous_phase  PhaseChanged (0-5)
	next_phase      PhaseChanged (0-5)
	recorded_at     RFC 3339 UTC timestamp

# Indexes

  - audit_record.kind
*/
package db
