package main

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sonirico/simclock"
)

func main() {
	ctx := context.Background()

	redisOpts, err := redis.ParseURL("redis://localhost:6379/0")
	if err != nil {
		panic(err)
	}

	redisCli := redis.NewClient(redisOpts)

	const stream = "simclock-test-advances"

	clock := simclock.NewSimulatedClock(simclock.SimulatedClockArgs{
		StartAt: time.Date(2022, 2, 5, 0, 0, 23, 0, time.UTC),
		Recorder: simclock.NewRedisAdvanceRecorder(redisCli, simclock.RedisAdvanceRecorderOpts{
			Stream: stream,
		}),
	})

	clock.Schedule(func(ctx context.Context, clock *simclock.SimulatedClock) {
		log.Printf("fired at %s", clock.Now())
	})

	for i := 0; i < 5; i++ {
		if err := clock.AdvanceBy(ctx, time.Minute); err != nil {
			log.Printf("error advance: '%v'", err)
		}

		log.Printf("now: '%v'", clock.Now())
	}

	entries, err := redisCli.XRange(ctx, stream, "-", "+").Result()
	if err != nil {
		log.Printf("error xrange: '%v'", err)
	}

	for _, entry := range entries {
		log.Printf("recorded: '%v'", entry.Values)
	}
}
