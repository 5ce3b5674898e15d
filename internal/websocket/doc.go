// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

/*
Package websocket pushes catalog change notifications to browsers.

Clients connect to GET /api/v1/ws. After every successful admin write to the
catalog the API broadcasts a catalog_changed message so open browse pages and
build pages can refetch:

	{"type":"catalog_changed","data":{"kind":"component","action":"updated","id":7,"timestamp":"..."}}

Clients may send {"type":"ping"} and receive {"type":"pong"}. The server also
sends protocol pings every 54 seconds and drops a client that misses a pong
for 60 seconds.

The Hub owns the client set. Run it under a supervisor with RunWithContext;
when its context ends every client is closed. Broadcasts never block the
caller: when the hub's queue is full the message is dropped and logged, and a
client whose send buffer is full is disconnected.
*/
package websocket
