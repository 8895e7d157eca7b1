// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

/*
Package services provides suture.Service wrappers for playmatch components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and translates a component's own lifecycle into that shape. The HTTP server
wrapper turns the blocking ListenAndServe/Shutdown pair into a Serve that
returns when the context is canceled, after draining connections for at
most the configured shutdown timeout.

Returning an error from Serve tells the supervisor to restart the service;
returning after context cancellation does not.
*/
package services
