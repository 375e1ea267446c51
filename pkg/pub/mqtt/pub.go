// Package mqtt publishes subsystem events to an MQTT broker.
package mqtt

import (
	"net/url"
	"strings"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/protobuf/proto"
)

// Publisher is a thin fire-and-forget MQTT client.
type Publisher struct {
	Client      paho.Client
	TopicPrefix string
}

// ClientOptionsFromURL creates ClientOptions from URL. The URL path
// becomes the topic prefix; a client-id query parameter sets the
// client id.
func ClientOptionsFromURL(serverURL string) (*paho.ClientOptions, string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, "", err
	}
	var server string
	if u.Scheme == "" || u.Scheme == "mqtt" {
		server = "tcp"
	} else {
		server = u.Scheme
	}
	server += "://" + u.Host

	topicPrefix := strings.TrimPrefix(u.Path, "/")

	opts := paho.NewClientOptions()
	opts.AddBroker(server).
		SetAutoReconnect(true).
		SetCleanSession(true)
	if u.User != nil {
		opts.SetUsername(u.User.Username())
		if pwd, ok := u.User.Password(); ok {
			opts.SetPassword(pwd)
		}
	}

	if clientID := u.Query().Get("client-id"); clientID != "" {
		opts.SetClientID(clientID)
	}

	return opts, topicPrefix, nil
}

// NewPublisher connects to the broker at brokerURL. clientID is used
// unless the URL carries its own client-id parameter.
func NewPublisher(brokerURL, clientID string) (*Publisher, error) {
	opts, prefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	if clientID != "" && opts.ClientID == "" {
		opts.SetClientID(clientID)
	}
	p := &Publisher{Client: paho.NewClient(opts), TopicPrefix: prefix}
	token := p.Client.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return nil, err
	}
	return p, nil
}

// Publish marshals msg and publishes it under the configured prefix
// at QoS 0.
func (p *Publisher) Publish(topic string, msg proto.Message) error {
	data, err := proto.Marshal(msg)
	if err != nil {
		return err
	}
	if p.TopicPrefix != "" {
		topic = p.TopicPrefix + "/" + topic
	}
	p.Client.Publish(topic, 0, false, data)
	return nil
}

// Close implements io.Closer.
func (p *Publisher) Close() error {
	p.Client.Disconnect(0)
	return nil
}
