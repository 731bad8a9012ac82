// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Rate API server.

Quickly Rate runs live image-rating events: an organizer uploads images,
participants join by scanning a QR code, everyone rates the current image
from 1 to 5 stars, and the organizer advances through the images until the
event closes and a leaderboard ranks them.

# Starting the Server

Configuration comes from a .env file, environment variables or CLI flags
(flags win):

	DATABASE_URL=quickly-rate.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string

Optional settings:

  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - PORT (-p): Server port (default: 3318)
  - PUBLIC_BASE_URL (-base-url): Frontend URL encoded in join QR codes
  - QR_SERVICE_URL (-qr-service): External QR image generator prefix
  - MAX_UPLOAD_BYTES (-max-upload): Image upload limit (default: 100 MiB)
  - AMQP_URL (-amqp-url): RabbitMQ URL; notifications are off when empty
  - AMQP_EXCHANGE (-amqp-exchange): Topic exchange for notifications

# Architecture

  - voting: Event rules (aggregation, progression, votes, participants)
  - store: One method per SQL statement over the four tables
  - handlers: HTTP request handlers (events, images, votes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - notify: Optional RabbitMQ notifications of state changes
  - models: Request/response and domain types
  - idgen: Ids and join codes
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
