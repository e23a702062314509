// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides durable audit sinks for a voting session.

# Opening a Store

	sink, err := store.Open(ctx, cfg)

cfg.StoreType selects the backend:

  - memory: nothing persisted, Open returns a nil sink
  - sqlite: modernc.org/sqlite, DATABASE_URL is a file name or DSN
  - postgres: lib/pq, DATABASE_URL is a connection string
  - bolt: a single Bolt file at DATABASE_URL

# Replay

Sinks only hold the audit log. On startup the caller loads it and replays it:

	records, err := sink.Records(ctx)
	session, err := voting.Restore(admin, records, voting.Options{Sink: sink})

Both backends refuse to store a sequence number twice, so two processes
writing the same log fail instead of forking it.

# Race Detector

boltdb/bolt v1.3.1 trips the checkptr instrumentation that -race enables
("converted pointer straddles multiple allocations"), so go test -race
aborts in this package. Run the store tests without -race; the other
packages are race-clean.
*/
package store
