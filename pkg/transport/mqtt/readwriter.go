// Package mqtt implements frame transport over an MQTT broker, for
// rovers reachable through a wireless bridge instead of a direct
// serial link.
package mqtt

import (
	"context"
	"io"
	"net/url"
	"strings"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"
)

// ClientOptionsFromURL creates paho ClientOptions from a broker URL of
// the form mqtt://host:port/topic-prefix. The path becomes the topic
// prefix.
func ClientOptionsFromURL(brokerURL string) (*paho.ClientOptions, string, error) {
	u, err := url.Parse(brokerURL)
	if err != nil {
		return nil, "", err
	}
	scheme := u.Scheme
	if scheme == "" || scheme == "mqtt" {
		scheme = "tcp"
	}
	opts := paho.NewClientOptions()
	opts.AddBroker(scheme + "://" + u.Host).
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
	return opts, strings.TrimPrefix(u.Path, "/"), nil
}

// ReadWriter implements FrameReadWriter over MQTT. Inbound frames
// arrive on SubTopic one per message, responses are published to
// PubTopic.
type ReadWriter struct {
	SubTopic string
	PubTopic string

	client  paho.Client
	prefix  string
	frameCh chan string
}

// NewReadWriter creates a ReadWriter for a broker URL.
func NewReadWriter(brokerURL string) (*ReadWriter, error) {
	opts, prefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	p := &ReadWriter{prefix: prefix, frameCh: make(chan string, 16)}
	opts.SetOnConnectHandler(func(paho.Client) {
		glog.Info("mqtt connected")
		p.subscribe()
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		glog.Warningf("mqtt connection lost: %v", err)
	})
	p.client = paho.NewClient(opts)
	return p, nil
}

// ForRover sets topics using the device-side convention:
// subscribe <id>/cmd, publish <id>/rsp.
func (p *ReadWriter) ForRover(id string) *ReadWriter {
	p.SubTopic, p.PubTopic = id+"/cmd", id+"/rsp"
	return p
}

// ForConsole sets topics using the controller-side convention:
// subscribe <id>/rsp, publish <id>/cmd.
func (p *ReadWriter) ForConsole(id string) *ReadWriter {
	p.SubTopic, p.PubTopic = id+"/rsp", id+"/cmd"
	return p
}

// ReadFrame implements FrameReader.
func (p *ReadWriter) ReadFrame() (string, error) {
	frame, ok := <-p.frameCh
	if !ok {
		return "", io.EOF
	}
	return frame, nil
}

// WriteFrame implements FrameWriter.
func (p *ReadWriter) WriteFrame(s string) error {
	token := p.client.Publish(p.prefix+p.PubTopic, 0, false, []byte(s))
	token.Wait()
	return token.Error()
}

// Connect connects to the broker synchronously. The subscription is
// established (and re-established after reconnects) by the connect
// handler.
func (p *ReadWriter) Connect() error {
	token := p.client.Connect()
	token.Wait()
	return token.Error()
}

// Run connects the client if needed and keeps the link alive until the
// context is canceled.
func (p *ReadWriter) Run(ctx context.Context) error {
	if !p.client.IsConnected() {
		if err := p.Connect(); err != nil {
			return err
		}
	}
	defer close(p.frameCh)
	defer p.client.Disconnect(0)
	<-ctx.Done()
	return ctx.Err()
}

// Close disconnects the client.
func (p *ReadWriter) Close() error {
	p.client.Disconnect(0)
	return nil
}

func (p *ReadWriter) subscribe() {
	topic := p.prefix + p.SubTopic
	if glog.V(2) {
		glog.Infof("SUB %q", topic)
	}
	p.client.Subscribe(topic, 0, func(_ paho.Client, msg paho.Message) {
		select {
		case p.frameCh <- string(msg.Payload()):
		default:
			glog.Warningf("frame dropped on %q", msg.Topic())
		}
	})
}
