// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package websocket

import (
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/tomtom215/rigbudget/internal/logging"
	"github.com/tomtom215/rigbudget/internal/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024 // the feed is server-push; clients only send pings
	sendBuffer     = 256
)

// nextClientID orders clients by connection time for broadcasts.
var nextClientID atomic.Uint64

// Client is one subscriber of the catalog feed.
type Client struct {
	id   uint64
	hub  *Hub
	conn *websocket.Conn
	send chan Message
}

// NewClient wraps an upgraded connection. Call Start to begin serving it.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:   nextClientID.Add(1),
		hub:  hub,
		conn: conn,
		send: make(chan Message, sendBuffer),
	}
}

// ID returns the client's connection-order identifier.
func (c *Client) ID() uint64 {
	return c.id
}

// Start serves the connection on two goroutines until either side closes.
func (c *Client) Start() {
	go c.deliver()
	go c.listen()
}

// listen answers application-level pings and unregisters the client when
// the connection drops or stops ponging.
func (c *Client) listen() {
	defer func() {
		c.hub.Unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	extend := func(string) error { return c.conn.SetReadDeadline(time.Now().Add(pongWait)) }
	if err := extend(""); err != nil {
		return
	}
	c.conn.SetPongHandler(extend)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				metrics.WSErrors.WithLabelValues("unexpected_close").Inc()
				logging.Debug().Err(err).Uint64("client", c.id).Msg("Catalog feed client dropped")
			}
			return
		}

		var in Message
		if json.Unmarshal(data, &in) != nil {
			metrics.WSErrors.WithLabelValues("bad_message").Inc()
			continue
		}
		if in.Type != MessageTypePing {
			continue
		}
		select {
		case c.send <- Message{Type: MessageTypePong}:
		default:
		}
	}
}

// deliver writes feed messages and keepalive pings. A closed send channel
// means the hub dropped the client.
func (c *Client) deliver() {
	keepalive := time.NewTicker(pingPeriod)
	defer func() {
		keepalive.Stop()
		_ = c.conn.Close()
	}()

	for {
		var err error
		select {
		case msg, open := <-c.send:
			if !open {
				_ = c.write(websocket.CloseMessage, nil)
				return
			}
			err = c.writeMessage(msg)
		case <-keepalive.C:
			err = c.write(websocket.PingMessage, nil)
		}
		if err != nil {
			metrics.WSErrors.WithLabelValues("write").Inc()
			return
		}
	}
}

func (c *Client) writeMessage(msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		logging.Error().Err(err).Str("message_type", msg.Type).Msg("Failed to encode catalog feed message")
		return nil
	}
	return c.write(websocket.TextMessage, payload)
}

func (c *Client) write(messageType int, payload []byte) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(messageType, payload)
}
