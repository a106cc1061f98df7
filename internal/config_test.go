/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Bucket != ScoresBucket {
		t.Errorf("Bucket = %q; want %q", cfg.Bucket, ScoresBucket)
	}
	if cfg.CacheTTL != 24*time.Hour {
		t.Errorf("CacheTTL = %v; want 24h", cfg.CacheTTL)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q; want :8080", cfg.ListenAddr)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("BRIDGESCORE_BUCKET", "my-bucket")
	t.Setenv("BRIDGESCORE_GZIP", "true")
	t.Setenv("BRIDGESCORE_CACHE_TTL", "90m")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Bucket != "my-bucket" || !cfg.GzipScores || cfg.CacheTTL != 90*time.Minute {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadConfigBadDuration(t *testing.T) {
	t.Setenv("BRIDGESCORE_CACHE_TTL", "soon")

	if _, err := LoadConfig(); err == nil {
		t.Errorf("expected error for bad duration")
	}
}
