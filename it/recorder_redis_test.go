package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/sonirico/simclock"
)

var (
	db *redis.Client
)

func TestMain(t *testing.M) {
	var pool *dockertest.Pool
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not spawn docker pool due to %s", err)
	}

	resource, err := pool.Run("redis", "7-alpine", nil)
	if err != nil {
		log.Fatalf("could not create resource due to %s", err)
	}

	fmt.Println("spawning redis container")

	if err := pool.Retry(func() error {
		db = redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("localhost:%s", resource.GetPort("6379/tcp")),
		})

		fmt.Println("redis ping")

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		return db.Ping(ctx).Err()
	}); err != nil {
		log.Fatalf("cannot connect to docker due to %s", err)
	}

	fmt.Println("redis is up and running")

	returnCode := t.Run()

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("cannot purge due to %s", err)
	}

	os.Exit(returnCode)
}

func TestRedisAdvanceRecorder_RecordsAdvanceSpan(t *testing.T) {
	if err := db.Ping(context.Background()).Err(); err != nil {
		t.Errorf("test has failed, expected redis to be running, have error: %v", err)
	}

	ctx := context.Background()

	const stream = "simclock|it|record_span"

	start := time.Date(2022, 2, 5, 0, 0, 23, 0, time.UTC)
	target := start.Add(time.Second * 30)

	clock := simclock.NewSimulatedClock(simclock.SimulatedClockArgs{
		StartAt:  start,
		Recorder: simclock.NewRedisAdvanceRecorder(db, simclock.RedisAdvanceRecorderOpts{Stream: stream}),
	})

	assertNoError(t, clock.AdvanceTo(ctx, target))

	entries, err := db.XRange(ctx, stream, "-", "+").Result()
	assertNoError(t, err)
	assertStreamLen(t, 2, len(entries))

	assertEventValue(t, entries[0].Values, "event", "advance_start")
	assertEventValue(t, entries[0].Values, "from", strconv.FormatInt(start.UnixNano(), 10))
	assertEventValue(t, entries[0].Values, "to", strconv.FormatInt(target.UnixNano(), 10))

	assertEventValue(t, entries[1].Values, "event", "advance_done")
	assertEventValue(t, entries[1].Values, "now", strconv.FormatInt(target.UnixNano(), 10))
}

func TestRedisAdvanceRecorder_AppendsAcrossAdvances(t *testing.T) {
	if err := db.Ping(context.Background()).Err(); err != nil {
		t.Errorf("test has failed, expected redis to be running, have error: %v", err)
	}

	ctx := context.Background()

	const stream = "simclock|it|append_across"

	start := time.Date(2022, 2, 5, 0, 0, 23, 0, time.UTC)

	clock := simclock.NewSimulatedClock(simclock.SimulatedClockArgs{
		StartAt:  start,
		Recorder: simclock.NewRedisAdvanceRecorder(db, simclock.RedisAdvanceRecorderOpts{Stream: stream}),
	})

	assertNoError(t, clock.AdvanceBy(ctx, time.Second*10))
	assertNoError(t, clock.AdvanceBy(ctx, time.Second*10))

	entries, err := db.XRange(ctx, stream, "-", "+").Result()
	assertNoError(t, err)
	assertStreamLen(t, 4, len(entries))

	assertEventValue(t, entries[2].Values, "event", "advance_start")
	assertEventValue(t, entries[2].Values, "from", strconv.FormatInt(start.Add(time.Second*10).UnixNano(), 10))
}
