/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings shared by the bridgescore binaries.
type Config struct {
	Bucket     string        `env:"BRIDGESCORE_BUCKET" envDefault:"bopmatic-bridgescore-prod-scores"`
	GzipScores bool          `env:"BRIDGESCORE_GZIP" envDefault:"false"`
	CacheTTL   time.Duration `env:"BRIDGESCORE_CACHE_TTL" envDefault:"24h"`
	ListenAddr string        `env:"BRIDGESCORE_LISTEN_ADDR" envDefault:":8080"`

	// discord bot credentials
	BotToken  string `env:"BRIDGESCORE_BOT_TOKEN"`
	BotPubKey string `env:"BRIDGESCORE_BOT_PUBKEY"`
	BotAppID  string `env:"BRIDGESCORE_BOT_APPID"`
	BotCmdID  string `env:"BRIDGESCORE_BOT_CMDID"`
}

// LoadConfig reads Config from the environment
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("unable to parse config: %w", err)
	}
	if cfg.Bucket == "" {
		cfg.Bucket = ScoresBucket
	}

	return cfg, nil
}
