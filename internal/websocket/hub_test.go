// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package websocket

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

// startHub runs a hub until the test ends.
func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.RunWithContext(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return hub
}

func newTestClient(hub *Hub, buffer int) *Client {
	return &Client{id: nextClientID.Add(1), hub: hub, send: make(chan Message, buffer)}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_RegisterBroadcastUnregister(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	a := newTestClient(hub, 8)
	b := newTestClient(hub, 8)
	hub.Register <- a
	hub.Register <- b
	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	hub.BroadcastCatalogChange(KindComponent, ActionUpdated, 7)

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.send:
			change, ok := msg.Data.(CatalogChange)
			if msg.Type != MessageTypeCatalogChanged || !ok || change.ID != 7 || change.Action != ActionUpdated {
				t.Errorf("message = %+v", msg)
			}
		case <-time.After(time.Second):
			t.Fatal("client did not receive broadcast")
		}
	}

	hub.Unregister <- a
	waitFor(t, func() bool { return hub.ClientCount() == 1 })
	if _, ok := <-a.send; ok {
		t.Error("unregistered client's channel still open")
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	slow := newTestClient(hub, 1)
	hub.Register <- slow
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.BroadcastJSON(MessageTypeCatalogChanged, nil)
	hub.BroadcastJSON(MessageTypeCatalogChanged, nil)

	waitFor(t, func() bool { return hub.ClientCount() == 0 })
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.RunWithContext(ctx) }()

	c := newTestClient(hub, 1)
	hub.Register <- c
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("RunWithContext = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop")
	}

	if _, ok := <-c.send; ok {
		t.Error("client channel still open after shutdown")
	}
	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount = %d after shutdown", hub.ClientCount())
	}
}

func TestBroadcastJSON_NonBlockingWhenFull(t *testing.T) {
	t.Parallel()

	hub := NewHub() // not running
	done := make(chan struct{})
	go func() {
		for i := 0; i < cap(hub.broadcast)+10; i++ {
			hub.BroadcastJSON(MessageTypeCatalogChanged, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("BroadcastJSON blocked on a full queue")
	}
}

func TestHandler_EndToEnd(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	srv := httptest.NewServer(NewHandler(hub, nil))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)); err != nil {
		t.Fatalf("write ping: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read pong: %v", err)
	}
	var pong Message
	if err := json.Unmarshal(data, &pong); err != nil || pong.Type != MessageTypePong {
		t.Fatalf("pong = %s, %v", data, err)
	}

	hub.BroadcastCatalogChange(KindMonitor, ActionDeleted, 3)
	_, data, err = conn.ReadMessage()
	if err != nil {
		t.Fatalf("read change: %v", err)
	}
	var got struct {
		Type string        `json:"type"`
		Data CatalogChange `json:"data"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Type != MessageTypeCatalogChanged || got.Data.Kind != KindMonitor || got.Data.ID != 3 {
		t.Errorf("change = %+v", got)
	}
}

func TestHandler_RejectsForeignOrigin(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	srv := httptest.NewServer(NewHandler(hub, []string{"https://rigbudget.example"}))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	header := http.Header{"Origin": []string{"https://evil.example"}}
	if _, _, err := websocket.DefaultDialer.Dial(wsURL, header); err == nil {
		t.Error("foreign origin accepted")
	}

	header = http.Header{"Origin": []string{"https://rigbudget.example"}}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("allowed origin rejected: %v", err)
	}
	_ = conn.Close()
}
