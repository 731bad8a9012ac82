// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Sources

Values are resolved in this order, later sources winning:

 1. struct defaults (envDefault tags)
 2. a .env file in the working directory, if present
 3. process environment variables
 4. CLI flags

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - PublicBaseURL: URL participants open to join; used for join links
  - QRServiceURL: prefix of the external QR image service
  - MaxUploadBytes: image upload limit (default: 100 MiB)
  - AMQPURL: broker for outbound notifications (empty disables them)
  - AMQPExchange: exchange notifications are published to

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-base-url       Public base URL
	-qr-service     QR image service prefix
	-max-upload     Upload limit in bytes
	-amqp-url       AMQP broker URL
	-amqp-exchange  AMQP exchange name

# Environment Variables

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	PUBLIC_BASE_URL   → -base-url
	QR_SERVICE_URL    → -qr-service
	MAX_UPLOAD_BYTES  → -max-upload
	AMQP_URL          → -amqp-url
	AMQP_EXCHANGE     → -amqp-exchange

# Validation

ParseFlags returns an error if the database URL is missing, the database
type is not sqlite or postgres, or a numeric setting is out of range.
*/
package cliparse
