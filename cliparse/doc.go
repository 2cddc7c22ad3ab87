// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Commands that own their flag set register the flags and load afterwards:

	cliparse.RegisterFlags(cmd.Flags())
	cfg, err := cliparse.Load(cmd.Flags())

The returned Config is a plain value; it is passed to every component at
construction and never modified afterwards.

# Sources

Highest precedence first:

 1. Command-line flags
 2. Environment variables
 3. The env file (default .env, ignored when missing)
 4. Flag defaults

# Settings

	--server-url         SERVER_URL          public base URL (required)
	--secret             SECRET_API_KEY      shared API secret (required)
	-p, --port           PORT                listen port (default 8086)
	--allowed-filetypes  ALLOWED_FILETYPES   comma-separated upload extensions
	--static-dir         STATIC_DIR          fs store directory (default static)
	--store              STORE_TYPE          fs, sqlite or postgres (default fs)
	-d, --database-url   DATABASE_URL        sqlite/postgres connection string
	--template           TEMPLATE_PATH       note template override
	--max-upload-bytes   MAX_UPLOAD_BYTES    request body limit (default 50 MiB)
	--log-level          LOG_LEVEL           debug, info, warn or error
	--env-file                               env file path (default .env)

# Validation

Load returns an error if SERVER_URL or SECRET_API_KEY is missing, the port
is out of range, the store type is unknown, or a SQL store has no
DATABASE_URL.
*/
package cliparse
