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

// Package locator parses backup artifact locators of the form
// scheme://bucket/path. Locators are otherwise opaque: everything past
// the bucket segment is carried through untouched, so no URL
// normalization or decoding is applied.
package locator

import (
	"fmt"
	"strings"
)

// Locator is a parsed artifact locator.
type Locator struct {
	// Scheme is the storage scheme (e.g. "s3", "gs")
	Scheme string

	// Bucket is the bucket segment following the scheme
	Bucket string

	// Path is the remainder after the bucket, without a leading slash.
	// May be empty.
	Path string
}

// Parse splits a locator into scheme, bucket and path.
// Example: Parse("s3://bucket/backups/b1") -> {s3, bucket, backups/b1}
func Parse(raw string) (Locator, error) {
	scheme, rest, found := strings.Cut(raw, "://")
	if !found || scheme == "" {
		return Locator{}, fmt.Errorf("locator %q has no scheme:// prefix", raw)
	}

	bucket, path, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return Locator{}, fmt.Errorf("locator %q has no bucket segment", raw)
	}

	return Locator{Scheme: scheme, Bucket: bucket, Path: path}, nil
}

// Bucket extracts just the bucket segment from a locator.
func Bucket(raw string) (string, error) {
	l, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return l.Bucket, nil
}

// String reassembles the locator.
func (l Locator) String() string {
	if l.Path == "" {
		return fmt.Sprintf("%s://%s", l.Scheme, l.Bucket)
	}
	return fmt.Sprintf("%s://%s/%s", l.Scheme, l.Bucket, l.Path)
}
