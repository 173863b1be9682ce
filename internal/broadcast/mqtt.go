package broadcast

import (
	"context"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	qosAtLeastOnce = 1
	publishTimeout = 5 * time.Second
)

type mqttPublisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// MQTTRelay publishes each match to "<prefix>/<matchId>". Updates are
// retained so a new subscriber sees the latest state at once; a deletion
// clears the retained copy.
type MQTTRelay struct {
	client mqttPublisher
	prefix string
}

// ConnectMQTT connects to broker with auto-reconnect enabled.
func ConnectMQTT(broker, clientID, prefix string) (*MQTTRelay, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(10 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetCleanSession(true)
	opts.SetOnConnectHandler(func(mqtt.Client) {
		log.Printf("broadcast: connected to MQTT broker %s", broker)
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Printf("broadcast: MQTT connection lost: %v", err)
	})

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker %s: %w", broker, token.Error())
	}
	return &MQTTRelay{client: client, prefix: prefix}, nil
}

func (r *MQTTRelay) topic(matchID string) string {
	return r.prefix + "/" + matchID
}

func (r *MQTTRelay) Publish(_ context.Context, msg Message) error {
	payload, err := msg.encode()
	if err != nil {
		return err
	}
	topic := r.topic(msg.MatchID)
	retained := msg.Type == TypeMatchUpdate
	if err := r.send(topic, retained, payload); err != nil {
		return err
	}
	if msg.Type == TypeMatchDeleted {
		return r.send(topic, true, []byte{})
	}
	return nil
}

func (r *MQTTRelay) send(topic string, retained bool, payload []byte) error {
	token := r.client.Publish(topic, qosAtLeastOnce, retained, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("mqtt publish to %s: timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt publish to %s: %w", topic, err)
	}
	return nil
}

func (r *MQTTRelay) Close() {
	r.client.Disconnect(250)
}
