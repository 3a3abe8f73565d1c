package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"octosupply/pkg/logger"
	"octosupply/pkg/supply"
)

type fakePublisher struct {
	channel string
	payload []byte
	err     error
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, message any) *redis.IntCmd {
	f.channel = channel
	f.payload = message.([]byte)
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	return redis.NewIntResult(2, nil)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register("log", Log(logger.Nop()))
	r.Register("publish", Publish(&fakePublisher{}, "c"))

	assert.Equal(t, []string{"log", "publish"}, r.Names())

	_, err := r.Lookup("log")
	assert.NoError(t, err)

	_, err = r.Lookup("rm -rf /")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	n := Log(logger.New(&buf, logger.LevelInfo, "octosupply", nil))

	out, err := n.Notify(context.Background(), Event{DeliveryID: 1, PreviousStatus: "pending", Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, "logged delivery 1 status delivered", out)
	assert.Contains(t, buf.String(), `"previous_status":"pending"`)
}

func TestPublish(t *testing.T) {
	fake := &fakePublisher{}
	n := Publish(fake, "octosupply:delivery-status")

	ev := Event{DeliveryID: 2, Status: "in-transit", Delivery: supply.Delivery{DeliveryID: 2, Name: "Package"}}
	out, err := n.Notify(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, "published delivery 2 status in-transit to octosupply:delivery-status (2 subscribers)", out)
	assert.Equal(t, "octosupply:delivery-status", fake.channel)

	var got Event
	require.NoError(t, json.Unmarshal(fake.payload, &got))
	assert.Equal(t, "Package", got.Delivery.Name)
}

func TestPublishError(t *testing.T) {
	fake := &fakePublisher{err: errors.New("connection refused")}
	_, err := Publish(fake, "c").Notify(context.Background(), Event{DeliveryID: 1})
	assert.ErrorContains(t, err, "connection refused")
}
