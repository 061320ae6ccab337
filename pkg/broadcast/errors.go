package broadcast

import "errors"

var (
	// ErrClosed is returned by Broadcast after the broadcaster has been closed.
	ErrClosed = errors.New("broadcast: broadcaster is closed")

	// ErrEncode is returned when a message cannot be serialized for transport.
	ErrEncode = errors.New("broadcast: failed to encode message")

	// ErrPublish is returned when the transport rejects a publish.
	ErrPublish = errors.New("broadcast: failed to publish message")

	// ErrFailedToParseRedisURL is returned when the Redis connection URL is malformed.
	ErrFailedToParseRedisURL = errors.New("broadcast: failed to parse redis connection url")

	// ErrRedisNotReady is returned when Redis does not answer PING within the retry budget.
	ErrRedisNotReady = errors.New("broadcast: redis did not become ready within the given time period")
)

// ErrHealthcheckFailed is returned when Redis does not answer a health check.
var ErrHealthcheckFailed = errors.New("broadcast: redis healthcheck failed")

// ErrSubscribe is logged when Redis does not confirm a subscription.
var ErrSubscribe = errors.New("broadcast: redis subscription not confirmed")
