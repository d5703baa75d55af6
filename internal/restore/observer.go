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

	drv1alpha1 "github.com/lissto-dev/restore-operator/api/v1alpha1"
)

// Observer finds the newest successfully completed backup in the source
// namespace. It is a pure read; backups are owned by the external backup
// producer.
type Observer struct {
	client    client.Client
	namespace string
}

// NewObserver creates a new backup observer scoped to a namespace
func NewObserver(c client.Client, namespace string) *Observer {
	return &Observer{client: c, namespace: namespace}
}

// FindNewestCompletedBackup returns the Succeeded backup with the latest
// completion time, ordering by creation timestamp when the producer never
// recorded a completion time. An empty result is a normal outcome and
// returns (nil, nil); only listing failures are errors.
func (o *Observer) FindNewestCompletedBackup(ctx context.Context) (*drv1alpha1.DataStoreBackup, error) {
	var backups drv1alpha1.DataStoreBackupList
	if err := o.client.List(ctx, &backups, client.InNamespace(o.namespace)); err != nil {
		return nil, fmt.Errorf("failed to list backups in %s: %w", o.namespace, err)
	}

	var newest *drv1alpha1.DataStoreBackup
	for i := range backups.Items {
		b := &backups.Items[i]
		if b.Status.Phase != drv1alpha1.BackupPhaseSucceeded {
			continue
		}
		if newest == nil || b.CompletedAt().After(newest.CompletedAt().Time) {
			newest = b
		}
	}

	if newest == nil {
		return nil, nil
	}
	return newest.DeepCopy(), nil
}
