package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/crease/internal/scoring"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishedAMQP struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	published []publishedAMQP
	err       error
	closed    bool
}

func (f *fakeChannel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, publishedAMQP{exchange, key, msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPRelayRoutesByType(t *testing.T) {
	ch := &fakeChannel{}
	relay := newAMQPRelay(ch, "crease.matches")

	require.NoError(t, relay.Publish(context.Background(), MatchUpdate(scoring.Match{ID: "m1"})))
	require.NoError(t, relay.Publish(context.Background(), MatchDeleted("m1")))

	require.Len(t, ch.published, 2)
	assert.Equal(t, "crease.matches", ch.published[0].exchange)
	assert.Equal(t, "matchUpdate.m1", ch.published[0].key)
	assert.Equal(t, "matchDeleted.m1", ch.published[1].key)
	assert.Equal(t, "application/json", ch.published[0].msg.ContentType)

	var body Message
	require.NoError(t, json.Unmarshal(ch.published[1].msg.Body, &body))
	assert.Equal(t, MatchDeleted("m1"), body)

	ch.err = errors.New("channel closed")
	assert.ErrorContains(t, relay.Publish(context.Background(), MatchDeleted("m2")), "channel closed")

	require.NoError(t, relay.Close())
	assert.True(t, ch.closed)
}

type fakeToken struct {
	err     error
	timeout bool
}

func (t fakeToken) Wait() bool                     { return true }
func (t fakeToken) WaitTimeout(time.Duration) bool { return !t.timeout }
func (t fakeToken) Error() error                   { return t.err }
func (t fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type publishedMQTT struct {
	topic    string
	retained bool
	payload  []byte
}

type fakeMQTT struct {
	published    []publishedMQTT
	token        fakeToken
	disconnected bool
}

func (f *fakeMQTT) Publish(topic string, _ byte, retained bool, payload interface{}) mqtt.Token {
	f.published = append(f.published, publishedMQTT{topic, retained, payload.([]byte)})
	return f.token
}

func (f *fakeMQTT) Disconnect(uint) { f.disconnected = true }

func TestMQTTRelayRetainsLatestState(t *testing.T) {
	client := &fakeMQTT{}
	relay := &MQTTRelay{client: client, prefix: "crease/matches"}

	require.NoError(t, relay.Publish(context.Background(), MatchUpdate(scoring.Match{ID: "m1"})))
	require.Len(t, client.published, 1)
	assert.Equal(t, "crease/matches/m1", client.published[0].topic)
	assert.True(t, client.published[0].retained)

	require.NoError(t, relay.Publish(context.Background(), MatchDeleted("m1")))
	require.Len(t, client.published, 3)
	assert.False(t, client.published[1].retained)
	assert.Contains(t, string(client.published[1].payload), `"matchDeleted"`)
	assert.True(t, client.published[2].retained)
	assert.Empty(t, client.published[2].payload)

	relay.Close()
	assert.True(t, client.disconnected)
}

func TestMQTTRelayErrors(t *testing.T) {
	client := &fakeMQTT{token: fakeToken{timeout: true}}
	relay := &MQTTRelay{client: client, prefix: "p"}
	assert.ErrorContains(t, relay.Publish(context.Background(), MatchDeleted("m1")), "timed out")
	assert.Len(t, client.published, 1)

	client.token = fakeToken{err: errors.New("not connected")}
	assert.ErrorContains(t, relay.Publish(context.Background(), MatchUpdate(scoring.Match{ID: "m1"})), "not connected")
}

type recorder struct {
	got []Message
	err error
}

func (r *recorder) Publish(_ context.Context, msg Message) error {
	r.got = append(r.got, msg)
	return r.err
}

func TestMultiJoinsErrors(t *testing.T) {
	ok := &recorder{}
	bad := &recorder{err: errors.New("broker down")}
	multi := Multi{ok, nil, bad}

	err := multi.Publish(context.Background(), MatchDeleted("m1"))
	assert.ErrorContains(t, err, "broker down")
	assert.Len(t, ok.got, 1)
	assert.Len(t, bad.got, 1)

	assert.NoError(t, Logged(multi).Publish(context.Background(), MatchDeleted("m1")))
	assert.Len(t, ok.got, 2)
	assert.NoError(t, Nop{}.Publish(context.Background(), MatchDeleted("m1")))
}
