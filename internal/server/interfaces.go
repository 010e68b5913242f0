// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract for the servers managed by this
// package.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns an error only when serving could not start or stopping
	// failed.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown() error
}
