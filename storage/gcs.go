// Copyright (C) 2025 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStorage stores document blobs in a google cloud storage bucket. Keys
// are opaque and caller generated.
type GCSStorage struct {
	client     *storage.Client
	bucketName string
}

// NewGCSStorage reads GCS_BUCKET_NAME and, if set, the credentials file
// from GOOGLE_APPLICATION_CREDENTIALS_JSON. Without an explicit credentials
// file the client falls back to application default credentials.
func NewGCSStorage() (*GCSStorage, error) {
	bucket := os.Getenv("GCS_BUCKET_NAME")
	if bucket == "" {
		return nil, fmt.Errorf("missing env var GCS_BUCKET_NAME")
	}

	ctx := context.Background()
	var client *storage.Client
	var err error
	if credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"); credentialsFile != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsFile(credentialsFile), option.WithScopes(storage.ScopeReadWrite))
	} else {
		client, err = storage.NewClient(ctx, option.WithScopes(storage.ScopeReadWrite))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &GCSStorage{
		client:     client,
		bucketName: bucket,
	}, nil
}

func (s *GCSStorage) Put(ctx context.Context, key string, content io.Reader) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(s.bucketName).Object(key).NewWriter(ctx)
	if _, err := io.Copy(w, content); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write data to bucket: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close bucket writer: %w", err)
	}
	return nil
}

// Get returns a reader over the stored bytes. The reader stays bound to the
// caller's context, so no timeout gets attached here.
func (s *GCSStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.client.Bucket(s.bucketName).Object(key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read bucket object %q: %w", key, err)
	}
	return r, nil
}

func (s *GCSStorage) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := s.client.Bucket(s.bucketName).Object(key).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete bucket object %q: %w", key, err)
	}
	return nil
}
