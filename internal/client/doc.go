// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Durmanov

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, client services, and background cache
// synchronization into a single process lifecycle.
package client
