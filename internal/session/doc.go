// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package session owns the high-level conversation state: connection and
generation flags, the active mode, and the attachment staging area.

The Session is mutated only on the Bubble Tea update loop. Transport
events reach it through HandleConnected and HandleDisconnected; user
actions reach it through Submit, Stop, SetMode, and the staging methods.

Generation has no cooperative cancel in the protocol: Stop severs the
transport, and reconnection (after a fixed delay) yields a fresh session
server-side. A disconnect for any reason clears the generating flag,
since no further frames can arrive on a dead connection.
*/
package session
