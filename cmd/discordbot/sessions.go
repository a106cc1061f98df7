/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/bridgescore/bridge"
	"github.com/mikeb26/bridgescore/internal"
	"github.com/mikeb26/bridgescore/s3store"
)

// sessionStore persists encoded tournament files; *s3store.Store satisfies it
type sessionStore interface {
	Load(ctx context.Context, prefix string, name string) ([]byte, error)
	Save(ctx context.Context, prefix string, name string, data []byte) error
}

var sessions sessionStore

// every handler that reads or writes a session holds sessionsMu for the
// whole load-modify-save sequence
var sessionsMu sync.Mutex

// sessionName returns the object name holding the tournament for the
// interaction's guild, or for the user when invoked from a DM.
func sessionName(inter *discordgo.Interaction) string {
	if inter.GuildID != "" {
		return inter.GuildID + ".txt"
	}
	if inter.Member != nil && inter.Member.User != nil {
		return "user-" + inter.Member.User.ID + ".txt"
	}
	if inter.User != nil {
		return "user-" + inter.User.ID + ".txt"
	}

	return "default.txt"
}

// loadSession returns the stored tournament or a fresh one dated today when
// nothing has been stored yet.
func loadSession(ctx context.Context, name string) (*bridge.Session, error) {
	data, err := sessions.Load(ctx, internal.SessionPrefix, name)
	if errors.Is(err, s3store.ErrNotFound) {
		return bridge.NewSession(bridge.DefaultEventDate(time.Now())), nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to load tournament: %w", err)
	}

	s, err := bridge.Deserialize(string(data))
	if err != nil {
		return nil, fmt.Errorf("unable to open tournament: %w", err)
	}

	return s, nil
}

func saveSession(ctx context.Context, name string, s *bridge.Session) error {
	err := sessions.Save(ctx, internal.SessionPrefix, name,
		[]byte(bridge.Serialize(s)))
	if err != nil {
		return fmt.Errorf("unable to save tournament: %w", err)
	}

	return nil
}

// archiveSession copies s into the archive under its dated file name
func archiveSession(ctx context.Context, guild string, s *bridge.Session) error {
	name := guild + "/" + bridge.SaveFileName(s.EventDate)
	err := sessions.Save(ctx, internal.ArchivePrefix, name,
		[]byte(bridge.Serialize(s)))
	if err != nil {
		return fmt.Errorf("unable to archive tournament: %w", err)
	}

	return nil
}
