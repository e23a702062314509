// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Vote API server.

Quickly Vote runs one phase-gated voting session: an administrator
registers participants, participants submit proposals and cast a single
vote each, and the administrator tallies the result. Every state change is
appended to an audit log.

# Starting the Server

	ADMIN_IDENTITY=0xadmin IDENTITY_SALT=s3cret go run .

Or with flags and a durable store:

	go run . -p 3318 -t sqlite -d ./vote.db --admin 0xadmin --identity-salt s3cret

Settings may also come from a .env file in the working directory.

# Configuration

Required settings:

  - ADMIN_IDENTITY (--admin): the session administrator
  - IDENTITY_SALT (--identity-salt): salt for identity fingerprints in logs

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - STORE_TYPE (-t): memory, sqlite, postgres or bolt (default: memory)
  - DATABASE_URL (-d): connection string or file path, required unless memory

# Restarts

With a durable store the server replays the stored audit log on startup,
so a restarted server continues the same session. A log that does not
replay cleanly stops startup.

# Architecture

  - voting: the session, phases, tally and audit log
  - store: audit sinks (PostgreSQL, SQLite, Bolt)
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request, response and domain types
  - auth: Caller identity and fingerprints
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
