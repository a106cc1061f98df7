/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 *
 * Package s3store keeps saved tournament files in Amazon S3. A Store also
 * implements httpcache.Cache so that fetched archive pages can share the
 * same bucket.
 */
package s3store

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const cachePrefix = "httpcache"

var ErrNotFound = errors.New("object not found")

// ObjectAPI is the subset of the S3 client used by Store
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput,
		optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput,
		optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput,
		optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput,
		optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input,
		optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Store objects save and load tournament files using Amazon S3.
type Store struct {
	// Config is the Amazon S3 configuration.
	Config aws.Config

	// Client is used for all S3 requests. Init() sets it from the default
	// Config; callers may substitute their own.
	Client ObjectAPI

	bucketName string

	// gzip indicates whether objects are gzipped on write and gunzipped on
	// read. Object keys get a ".gz" suffix when set.
	gzip bool

	logErrors bool

	// ctx is used for the httpcache.Cache methods which carry no context
	ctx context.Context
}

// New returns a new Store backed by the named bucket. Callers should invoke
// Init() before use unless they supply their own Client.
func New(ctxIn context.Context, bucketNameIn string, gzipIn bool,
	logErrorsIn bool) *Store {

	return &Store{
		ctx:        ctxIn,
		bucketName: bucketNameIn,
		gzip:       gzipIn,
		logErrors:  logErrorsIn,
	}
}

// Init loads the default AWS configuration (environment variables, then
// shared config and credentials files) and checks that the bucket is
// reachable and listable.
func (s *Store) Init() error {
	var err error
	s.Config, err = config.LoadDefaultConfig(s.ctx)
	if err != nil {
		return fmt.Errorf("s3store.init: failed to load AWS config: %w", err)
	}
	s.Client = s3.NewFromConfig(s.Config)

	if _, err = s.Client.HeadBucket(s.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucketName),
	}); err != nil {
		return fmt.Errorf("s3store.init: head bucket failed for %s: %w", s.bucketName, err)
	}

	if _, err = s.Client.ListObjectsV2(s.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucketName),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("s3store.init: list objects failed for %s: %w", s.bucketName, err)
	}

	return nil
}

// Load returns the contents of the named file under prefix. A missing
// object yields ErrNotFound.
func (s *Store) Load(ctx context.Context, prefix string, name string) ([]byte, error) {
	data, err := s.getObject(ctx, s.fileObjectKey(prefix, name))
	if err != nil {
		return nil, fmt.Errorf("unable to load %v: %w", name, err)
	}

	return data, nil
}

// Save writes data as the named file under prefix
func (s *Store) Save(ctx context.Context, prefix string, name string, data []byte) error {
	if err := s.putObject(ctx, s.fileObjectKey(prefix, name), data); err != nil {
		return fmt.Errorf("unable to save %v: %w", name, err)
	}

	return nil
}

// List returns the sorted names of all files under prefix
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	keyPrefix := prefix + "/"
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucketName),
		Prefix: aws.String(keyPrefix),
	}

	var names []string
	p := s3.NewListObjectsV2Paginator(s.Client, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("unable to list %v: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), keyPrefix)
			if s.gzip {
				name = strings.TrimSuffix(name, ".gz")
			}
			if name != "" {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)

	return names, nil
}

// Get implements httpcache.Cache
func (s *Store) Get(key string) ([]byte, bool) {
	data, err := s.getObject(s.ctx, s.cacheKeyToObjectKey(key))
	if err != nil {
		// no such key just indicates a cache miss
		if s.logErrors && !errors.Is(err, ErrNotFound) {
			log.Printf("s3store.get: %v", err)
		}
		return []byte{}, false
	}

	return data, true
}

// Set implements httpcache.Cache
func (s *Store) Set(key string, data []byte) {
	err := s.putObject(s.ctx, s.cacheKeyToObjectKey(key), data)
	if err != nil && s.logErrors {
		log.Printf("s3store.set: %v", err)
	}
}

// Delete implements httpcache.Cache
func (s *Store) Delete(key string) {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.cacheKeyToObjectKey(key)),
	}

	_, err := s.Client.DeleteObject(s.ctx, input)
	if err != nil && s.logErrors {
		log.Printf("s3store.delete: delete failed: %v", err)
	}
}

func (s *Store) getObject(ctx context.Context, objKey string) ([]byte, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objKey),
	}

	resp, err := s.Client.GetObject(ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return nil, fmt.Errorf("%v%v: %w", s.bucketName, objKey, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get object %v%v: %w", s.bucketName,
			objKey, err)
	}
	defer resp.Body.Close()

	rdr := resp.Body
	if s.gzip {
		rdr, err = gzip.NewReader(rdr)
		if err != nil {
			return nil, fmt.Errorf("failed to open compressed object %v%v: %w",
				s.bucketName, objKey, err)
		}
		defer rdr.Close()
	}
	data, err := io.ReadAll(rdr)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %v%v: %w", s.bucketName,
			objKey, err)
	}

	return data, nil
}

func (s *Store) putObject(ctx context.Context, objKey string, data []byte) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objKey),
		Body:   bytes.NewReader(data),
	}

	if s.gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(data); err != nil {
			return fmt.Errorf("failed to gzip data for %v%v: %w", s.bucketName,
				objKey, err)
		}
		if err := gw.Close(); err != nil {
			return fmt.Errorf("failed to close gzip writer for %v%v: %w",
				s.bucketName, objKey, err)
		}
		input.Body = &buf
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := s.Client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put failed for %v%v: %w", s.bucketName, objKey, err)
	}

	return nil
}

func (s *Store) fileObjectKey(prefix string, name string) string {
	objKey := fmt.Sprintf("%v/%v", prefix, name)
	if s.gzip {
		objKey += ".gz"
	}

	return objKey
}

func (s *Store) cacheKeyToObjectKey(key string) string {
	h := md5.New()
	io.WriteString(h, key)
	objKey := fmt.Sprintf("%v/%v", cachePrefix, hex.EncodeToString(h.Sum(nil)))
	if s.gzip {
		objKey += ".gz"
	}

	return objKey
}
