/*
Copyright 2025 Lissto.

Licensed under the Sustainable Use License, Version 1.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://github.com/lissto-dev/restore-operator/blob/main/LICENSE.md

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package restore

import (
	"context"
	"fmt"

	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	drv1alpha1 "github.com/lissto-dev/restore-operator/api/v1alpha1"
)

// Guard checks for an in-flight restore in the destination namespace.
// It is a best-effort check, not a lock: two instances racing between
// check and create can both submit a restore for the same backup.
type Guard struct {
	client    client.Client
	namespace string
}

// NewGuard creates a new concurrency guard scoped to a namespace
func NewGuard(c client.Client, namespace string) *Guard {
	return &Guard{client: c, namespace: namespace}
}

// RestoreInProgress returns true if any restore request in the namespace
// is Pending, Starting or Running. A restore with an empty or
// unrecognized state counts as not in progress, so one malformed record
// cannot deadlock the loop forever; such records are logged.
func (g *Guard) RestoreInProgress(ctx context.Context) (bool, error) {
	log := logf.FromContext(ctx)

	var restores drv1alpha1.DataStoreRestoreList
	if err := g.client.List(ctx, &restores, client.InNamespace(g.namespace)); err != nil {
		return false, fmt.Errorf("failed to list restores in %s: %w", g.namespace, err)
	}

	for i := range restores.Items {
		r := &restores.Items[i]
		state := r.Status.State
		if state.InProgress() {
			return true, nil
		}
		if !state.Known() {
			log.Info("Restore has no recognized state; treating as not in progress",
				"restore", r.Name, "state", string(state))
		}
	}

	return false, nil
}
