// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

LoadEnv reads an optional .env file, then ParseFlags returns a Config:

	if err := cliparse.LoadEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - StoreType: memory, sqlite, postgres or bolt (default: memory)
  - DatabaseURL: Connection string or file path (required unless memory)
  - AdminIdentity: Identity of the session administrator (required)
  - IdentitySalt: Secret for identity fingerprints in logs (required)

# CLI Flags

	-p               Server port
	-t               Store type
	-d               Database URL
	--admin          Administrator identity
	--identity-salt  Identity fingerprint salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	STORE_TYPE     → -t
	DATABASE_URL   → -d
	ADMIN_IDENTITY → --admin
	IDENTITY_SALT  → --identity-salt

CLI flags take precedence over environment variables, and environment
variables take precedence over the .env file.
*/
package cliparse
