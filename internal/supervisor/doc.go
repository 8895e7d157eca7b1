// Playmatch - Player Similarity Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playmatch

/*
Package supervisor provides process supervision for the playmatch server
using suture v4.

The tree has a root supervisor and one child per layer:

	RootSupervisor ("playmatch")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashed service is restarted with suture's backoff; the failure threshold,
decay and backoff are configurable through TreeConfig. Supervisor events
(service panics, restarts, backoff) are logged through sutureslog, which
takes a *slog.Logger. Pass logging.NewSlogLogger() so these events land in
the same zerolog stream as the rest of the application.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.Setup()}
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Thread Safety

SupervisorTree methods are safe for concurrent use; suture serializes
service additions and removals internally.
*/
package supervisor
