package simclock

import (
	"context"
	"time"

	redis "github.com/go-redis/redis/v8"
)

const defaultAdvanceStream = "simclock|advances"

type (
	RedisAdvanceRecorderOpts struct {
		Stream string
	}

	// RedisAdvanceRecorder appends advance events to a Redis stream, one
	// entry per start and done notification. Useful to correlate simulated
	// time movement with the side effects the code under test produced in
	// shared infrastructure. Writes are fire-and-forget: a failed append
	// never disturbs the advance that triggered it.
	RedisAdvanceRecorder struct {
		cli *redis.Client

		stream string
	}
)

func (r RedisAdvanceRecorder) RecordAdvanceStart(ctx context.Context, from, to time.Time) {
	r.cli.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		Values: map[string]interface{}{
			"event": "advance_start",
			"from":  from.UnixNano(),
			"to":    to.UnixNano(),
		},
	})
}

func (r RedisAdvanceRecorder) RecordAdvanceDone(ctx context.Context, now time.Time) {
	r.cli.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		Values: map[string]interface{}{
			"event": "advance_done",
			"now":   now.UnixNano(),
		},
	})
}

// NewRedisAdvanceRecorder returns a new instance of RedisAdvanceRecorder from struct of args
func NewRedisAdvanceRecorder(cli *redis.Client, opts RedisAdvanceRecorderOpts) RedisAdvanceRecorder {
	stream := opts.Stream

	if stream == "" {
		stream = defaultAdvanceStream
	}

	return RedisAdvanceRecorder{
		cli:    cli,
		stream: stream,
	}
}
