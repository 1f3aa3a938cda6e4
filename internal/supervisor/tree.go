// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package supervisor

import (
	"context"
	"time"

	"github.com/thejerf/sutureslog"
	"github.com/thejerf/suture/v4"

	"github.com/verdantgeo/verdant/internal/logging"
)

// Tree is the root supervisor. Services restart on failure with
// exponential backoff; a service failing too fast takes the tree down
// rather than flapping forever.
type Tree struct {
	root *suture.Supervisor
}

// New builds the root supervisor wired into zerolog through the slog
// bridge.
func New(name string) *Tree {
	hook := (&sutureslog.Handler{Logger: logging.NewSlogLogger()}).MustHook()
	root := suture.New(name, suture.Spec{
		EventHook:        hook,
		FailureDecay:     30,
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
	})
	return &Tree{root: root}
}

// Add registers a service with the root supervisor.
func (t *Tree) Add(svc suture.Service) suture.ServiceToken {
	return t.root.Add(svc)
}

// Serve runs the tree until ctx is cancelled.
func (t *Tree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}
