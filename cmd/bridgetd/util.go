/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/mikeb26/bridgescore/archive"
	"github.com/mikeb26/bridgescore/bridge"
	"github.com/mikeb26/bridgescore/internal"
	"github.com/mikeb26/bridgescore/s3store"
)

func requireFile(fs *flag.FlagSet, file string) {
	if file == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --file.")
		fs.Usage()
		os.Exit(1)
	}
}

func readSession(file string) (*bridge.Session, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	s, err := bridge.Deserialize(string(data))
	if err != nil {
		lineCount := len(strings.Split(string(data), "\n"))
		return nil, fmt.Errorf("%w (Line count: %v)", err, lineCount)
	}

	return s, nil
}

func mustReadSession(file string) *bridge.Session {
	s, err := readSession(file)
	if err != nil {
		log.Fatalf("Failed to open %v: %v", file, err)
	}

	return s
}

// writeSession saves s to file via a temporary file so that a failed write
// never leaves a truncated tournament behind.
func writeSession(file string, s *bridge.Session) error {
	tmp, err := os.CreateTemp(filepath.Dir(file), ".bridgetd-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(bridge.Serialize(s)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	mode := os.FileMode(0644)
	if fi, err := os.Stat(file); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), file)
}

func mustStore(ctx context.Context) *s3store.Store {
	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}
	store := s3store.New(ctx, cfg.Bucket, cfg.GzipScores, true)
	if err := store.Init(); err != nil {
		log.Fatalf("Unable to reach archive: %v", err)
	}

	return store
}

// newHttpClient returns a client cached in the S3 bucket, or an uncached
// client when the bucket is unreachable.
func newHttpClient(ctx context.Context) *http.Client {
	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Printf("bridgetd.http: %v; falling back to uncached http", err)
		return internal.NewCachedHttpClient(nil, 0)
	}
	store := s3store.New(ctx, cfg.Bucket, cfg.GzipScores, false)
	if err := store.Init(); err != nil {
		log.Printf("bridgetd.http: warning failed to init S3 cache: %v; falling back to uncached http",
			err)
		return internal.NewCachedHttpClient(nil, 0)
	}

	return internal.NewCachedHttpClient(store, cfg.CacheTTL)
}

// newSourceLoader returns a Loader that treats http(s) sources as URLs and
// everything else as local paths.
func newSourceLoader(ctx context.Context, srcs []string) archive.Loader {
	var fetch archive.Loader
	for _, src := range srcs {
		if isURL(src) {
			fetch = archive.HTTPLoader(newHttpClient(ctx))
			break
		}
	}

	return func(ctx context.Context, src string) ([]byte, error) {
		if isURL(src) {
			return fetch(ctx, src)
		}
		return os.ReadFile(src)
	}
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
