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
	"fmt"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	drv1alpha1 "github.com/lissto-dev/restore-operator/api/v1alpha1"
	"github.com/lissto-dev/restore-operator/pkg/config"
)

// restoreNameTimeLayout makes restore identities sortable by creation
const restoreNameTimeLayout = "20060102-150405"

// GenerateRestoreName derives a fresh restore request identity from the
// given time. Example: "restore-20240101-000000".
func GenerateRestoreName(now time.Time) string {
	return fmt.Sprintf("restore-%s", now.UTC().Format(restoreNameTimeLayout))
}

// Request carries everything needed to construct a restore request for
// one backup artifact.
type Request struct {
	// Name is the fresh restore identity
	Name string

	// Namespace is the destination namespace
	Namespace string

	// DataStoreName is the data store to restore into
	DataStoreName string

	// Locator is the backup artifact locator, carried verbatim
	Locator string

	// Bucket is the bucket parsed from the locator; may be empty when the
	// locator had no parseable prefix
	Bucket string

	// Storage settings are passed through without interpretation
	Storage config.StorageConfig
}

// Build constructs the DataStoreRestore object for the external executor
func (r Request) Build() *drv1alpha1.DataStoreRestore {
	return &drv1alpha1.DataStoreRestore{
		ObjectMeta: metav1.ObjectMeta{
			Name:      r.Name,
			Namespace: r.Namespace,
			Labels: map[string]string{
				drv1alpha1.RestoreLabelDataStore: r.DataStoreName,
			},
		},
		Spec: drv1alpha1.DataStoreRestoreSpec{
			DataStoreName: r.DataStoreName,
			BackupSource: drv1alpha1.BackupSource{
				Locator:           r.Locator,
				Bucket:            r.Bucket,
				Region:            r.Storage.Region,
				Endpoint:          r.Storage.Endpoint,
				CredentialsSecret: r.Storage.CredentialsSecret,
			},
		},
	}
}
