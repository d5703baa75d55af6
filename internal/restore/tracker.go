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

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

const (
	trackingKeyTimestamp = "lastCompletedBackupTimestamp"
	trackingKeyLocator   = "lastDestinationLocator"
)

// Tracking is the durable high-water mark of the last backup that was
// fully restored end to end. Empty values mean "never restored".
type Tracking struct {
	LastCompletedBackupTimestamp string
	LastDestinationLocator       string
}

// Matches reports whether the tracked pair equals the given pair exactly.
// Timestamps are compared as the strings that were written, never
// re-parsed, so formatting differences count as a mismatch.
func (t Tracking) Matches(timestamp, locator string) bool {
	return t.LastCompletedBackupTimestamp == timestamp && t.LastDestinationLocator == locator
}

// Tracker reads and writes the tracking record, a ConfigMap in the
// destination namespace. It is the only cross-cycle state the operator
// owns; every decision is re-derived from it so a restarted process
// resumes correctly.
type Tracker struct {
	client    client.Client
	namespace string
	name      string
}

// NewTracker creates a tracker backed by the named ConfigMap
func NewTracker(c client.Client, namespace, name string) *Tracker {
	return &Tracker{client: c, namespace: namespace, name: name}
}

// Read returns the current tracking record. A missing ConfigMap is not
// an error; it yields the zero Tracking, meaning no restore has ever
// completed.
func (t *Tracker) Read(ctx context.Context) (Tracking, error) {
	var cm corev1.ConfigMap
	err := t.client.Get(ctx, client.ObjectKey{Name: t.name, Namespace: t.namespace}, &cm)
	if apierrors.IsNotFound(err) {
		return Tracking{}, nil
	}
	if err != nil {
		return Tracking{}, fmt.Errorf("failed to read tracking record %s/%s: %w", t.namespace, t.name, err)
	}

	return Tracking{
		LastCompletedBackupTimestamp: cm.Data[trackingKeyTimestamp],
		LastDestinationLocator:       cm.Data[trackingKeyLocator],
	}, nil
}

// Write upserts the tracking record. The ConfigMap is created on first
// success and updated in place afterwards; repeating an identical write
// is a no-op in effect.
func (t *Tracker) Write(ctx context.Context, timestamp, locator string) error {
	data := map[string]string{
		trackingKeyTimestamp: timestamp,
		trackingKeyLocator:   locator,
	}

	var cm corev1.ConfigMap
	err := t.client.Get(ctx, client.ObjectKey{Name: t.name, Namespace: t.namespace}, &cm)
	if apierrors.IsNotFound(err) {
		cm = corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: t.name, Namespace: t.namespace},
			Data:       data,
		}
		if err := t.client.Create(ctx, &cm); err != nil {
			return fmt.Errorf("failed to create tracking record %s/%s: %w", t.namespace, t.name, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read tracking record %s/%s: %w", t.namespace, t.name, err)
	}

	cm.Data = data
	if err := t.client.Update(ctx, &cm); err != nil {
		return fmt.Errorf("failed to update tracking record %s/%s: %w", t.namespace, t.name, err)
	}
	return nil
}
