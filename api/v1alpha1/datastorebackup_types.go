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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DataStoreBackupPhase represents the current phase of a DataStoreBackup
type DataStoreBackupPhase string

const (
	// BackupPhasePending indicates the backup is waiting to be processed
	BackupPhasePending DataStoreBackupPhase = "Pending"

	// BackupPhaseRunning indicates the backup is being taken
	BackupPhaseRunning DataStoreBackupPhase = "Running"

	// BackupPhaseSucceeded indicates the backup artifact was written successfully
	BackupPhaseSucceeded DataStoreBackupPhase = "Succeeded"

	// BackupPhaseFailed indicates the backup failed
	BackupPhaseFailed DataStoreBackupPhase = "Failed"
)

// DataStoreBackupSpec defines the desired state of DataStoreBackup.
// Backups are produced by an external backup subsystem; this operator
// only ever reads them.
type DataStoreBackupSpec struct {
	// DataStoreName is the data store this backup was taken from
	// +optional
	DataStoreName string `json:"dataStoreName,omitempty"`
}

// DataStoreBackupStatus defines the observed state of DataStoreBackup
type DataStoreBackupStatus struct {
	// Phase represents the current phase of the backup
	// +optional
	Phase DataStoreBackupPhase `json:"phase,omitempty"`

	// StoragePath is the object storage locator the backup artifact was
	// written to (e.g. "s3://bucket/backups/b1")
	// +optional
	StoragePath string `json:"storagePath,omitempty"`

	// CompletionTime is when the backup completed
	// +optional
	CompletionTime *metav1.Time `json:"completionTime,omitempty"`

	// Message provides additional information about the current phase
	// +optional
	Message string `json:"message,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Storage Path",type=string,JSONPath=`.status.storagePath`
// +kubebuilder:printcolumn:name="Completed",type=date,JSONPath=`.status.completionTime`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// DataStoreBackup is the Schema for the datastorebackups API.
// It describes one backup run of the primary data store and where its
// artifact landed in object storage.
type DataStoreBackup struct {
	metav1.TypeMeta `json:",inline"`

	// metadata is standard object metadata
	// +optional
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// spec defines the desired state of DataStoreBackup
	// +optional
	Spec DataStoreBackupSpec `json:"spec,omitempty"`

	// status defines the observed state of DataStoreBackup
	// +optional
	Status DataStoreBackupStatus `json:"status,omitempty"`
}

// CompletedAt returns the completion time of the backup, falling back to
// the creation timestamp when the producer never recorded one.
func (b *DataStoreBackup) CompletedAt() metav1.Time {
	if b.Status.CompletionTime != nil && !b.Status.CompletionTime.IsZero() {
		return *b.Status.CompletionTime
	}
	return b.CreationTimestamp
}

// +kubebuilder:object:root=true

// DataStoreBackupList contains a list of DataStoreBackup
type DataStoreBackupList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []DataStoreBackup `json:"items"`
}

func init() {
	SchemeBuilder.Register(&DataStoreBackup{}, &DataStoreBackupList{})
}
