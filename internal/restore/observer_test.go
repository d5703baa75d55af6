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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	drv1alpha1 "github.com/lissto-dev/restore-operator/api/v1alpha1"
)

var _ = Describe("Observer", func() {
	ctx := context.Background()

	Context("with no backups in scope", func() {
		It("returns nil without error", func() {
			observer := NewObserver(newFakeClient(), "prod")

			backup, err := observer.FindNewestCompletedBackup(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(backup).To(BeNil())
		})
	})

	Context("with no succeeded backups", func() {
		It("returns nil without error", func() {
			c := newFakeClient(
				newBackup("b1", "prod", drv1alpha1.BackupPhaseRunning, "", ""),
				newBackup("b2", "prod", drv1alpha1.BackupPhaseFailed, "", "s3://bucket/b2"),
				newBackup("b3", "prod", drv1alpha1.BackupPhasePending, "", ""),
			)
			observer := NewObserver(c, "prod")

			backup, err := observer.FindNewestCompletedBackup(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(backup).To(BeNil())
		})
	})

	Context("with several succeeded backups", func() {
		It("returns the one with the latest completion time", func() {
			c := newFakeClient(
				newBackup("b1", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-01T00:00:00Z", "s3://bucket/b1"),
				newBackup("b3", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-03T00:00:00Z", "s3://bucket/b3"),
				newBackup("b2", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-02T00:00:00Z", "s3://bucket/b2"),
			)
			observer := NewObserver(c, "prod")

			backup, err := observer.FindNewestCompletedBackup(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(backup).NotTo(BeNil())
			Expect(backup.Name).To(Equal("b3"))
			Expect(backup.Status.StoragePath).To(Equal("s3://bucket/b3"))
		})

		It("ignores newer backups that did not succeed", func() {
			c := newFakeClient(
				newBackup("b1", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-01T00:00:00Z", "s3://bucket/b1"),
				newBackup("b2", "prod", drv1alpha1.BackupPhaseRunning, "2024-01-02T00:00:00Z", ""),
			)
			observer := NewObserver(c, "prod")

			backup, err := observer.FindNewestCompletedBackup(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(backup.Name).To(Equal("b1"))
		})
	})

	Context("when a backup has no completion time", func() {
		It("falls back to the creation timestamp for ordering", func() {
			old := newBackup("older", "prod", drv1alpha1.BackupPhaseSucceeded, "2024-01-01T00:00:00Z", "s3://bucket/older")

			recent := newBackup("recent", "prod", drv1alpha1.BackupPhaseSucceeded, "", "s3://bucket/recent")
			recent.CreationTimestamp = mustTime("2024-02-01T00:00:00Z")

			observer := NewObserver(newFakeClient(old, recent), "prod")

			backup, err := observer.FindNewestCompletedBackup(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(backup.Name).To(Equal("recent"))
		})
	})

	Context("with backups outside the source namespace", func() {
		It("does not consider them", func() {
			c := newFakeClient(
				newBackup("b1", "elsewhere", drv1alpha1.BackupPhaseSucceeded, "2024-01-01T00:00:00Z", "s3://bucket/b1"),
			)
			observer := NewObserver(c, "prod")

			backup, err := observer.FindNewestCompletedBackup(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(backup).To(BeNil())
		})
	})
})
