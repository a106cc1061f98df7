/* Copyright (c) 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package s3store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/google/go-cmp/cmp"
	"github.com/gregjones/httpcache/test"

	"github.com/mikeb26/bridgescore/internal"
)

// memClient is an in-memory stand-in for the S3 client
type memClient struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemClient() *memClient {
	return &memClient{objects: make(map[string][]byte)}
}

func (m *memClient) GetObject(ctx context.Context, in *s3.GetObjectInput,
	optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {

	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &smithy.GenericAPIError{Code: "NoSuchKey",
			Message: "The specified key does not exist."}
	}
	return &s3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader(string(data))),
	}, nil
}

func (m *memClient) PutObject(ctx context.Context, in *s3.PutObjectInput,
	optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {

	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (m *memClient) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput,
	optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (m *memClient) HeadBucket(ctx context.Context, in *s3.HeadBucketInput,
	optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {

	return &s3.HeadBucketOutput{}, nil
}

func (m *memClient) ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input,
	optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {

	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k := range m.objects {
		if strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(false)}
	for _, k := range keys {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
	}
	return out, nil
}

func newMemStore(gzip bool) (*Store, *memClient) {
	client := newMemClient()
	store := New(context.Background(), "test-bucket", gzip, false)
	store.Client = client
	return store, client
}

func TestStoreAsHttpCache(t *testing.T) {
	for _, gz := range []bool{false, true} {
		t.Run(fmt.Sprintf("gzip=%v", gz), func(t *testing.T) {
			store, _ := newMemStore(gz)
			test.Cache(t, store)
		})
	}
}

func TestSaveLoadList(t *testing.T) {
	for _, gz := range []bool{false, true} {
		t.Run(fmt.Sprintf("gzip=%v", gz), func(t *testing.T) {
			ctx := context.Background()
			store, client := newMemStore(gz)

			files := map[string]string{
				"Bridge scores 10-19-2026.txt": "10/19/2026\r\nClarks",
				"Bridge scores 10-12-2026.txt": "10/12/2026\r\nLeedoms",
			}
			for name, body := range files {
				if err := store.Save(ctx, internal.ArchivePrefix, name, []byte(body)); err != nil {
					t.Fatalf("Save(%v) error: %v", name, err)
				}
			}
			// unrelated objects must not show up in the listing
			store.Set("http://example.com/", []byte("cached"))

			for name, body := range files {
				got, err := store.Load(ctx, internal.ArchivePrefix, name)
				if err != nil {
					t.Fatalf("Load(%v) error: %v", name, err)
				}
				if string(got) != body {
					t.Errorf("Load(%v) = %q; want %q", name, got, body)
				}
			}

			names, err := store.List(ctx, internal.ArchivePrefix)
			if err != nil {
				t.Fatalf("List error: %v", err)
			}
			want := []string{"Bridge scores 10-12-2026.txt",
				"Bridge scores 10-19-2026.txt"}
			if diff := cmp.Diff(want, names); diff != "" {
				t.Errorf("List mismatch (-want +got):\n%s", diff)
			}

			if gz {
				raw := client.objects[internal.ArchivePrefix+"/Bridge scores 10-19-2026.txt.gz"]
				if len(raw) == 0 || string(raw) == files["Bridge scores 10-19-2026.txt"] {
					t.Errorf("expected gzipped object, got %q", raw)
				}
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	store, _ := newMemStore(false)

	_, err := store.Load(context.Background(), internal.SessionPrefix, "nope.txt")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load of missing object: got %v; want ErrNotFound", err)
	}
}

func TestS3StoreLive(t *testing.T) {
	store := New(context.Background(), internal.ScoresBucket, true, true)
	err := store.Init()
	if err != nil {
		t.Skip(fmt.Sprintf("Skipping test due to lack of access to %v: %v",
			internal.ScoresBucket, err))
	}

	test.Cache(t, store)
}
