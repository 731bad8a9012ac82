// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify publishes state-change notifications to an external broker.

Clients never receive these; they keep polling. Notifications exist for
downstream consumers such as analytics or archiving.

	pub, err := notify.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange)

Messages are JSON-encoded Notification values published to a topic exchange
with the notification type as routing key:

	event.created  event.status_changed  event.advanced
	event.closed   image.added           vote.recorded

When no broker is configured the Nop publisher is used.
*/
package notify
