/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/bridgescore/bridge"
)

type BridgeSubCommand string

const (
	BridgeHelpCmd      BridgeSubCommand = "help"
	BridgeNewCmd       BridgeSubCommand = "new"
	BridgePairingsCmd  BridgeSubCommand = "pairings"
	BridgeScoreCmd     BridgeSubCommand = "score"
	BridgeClearCmd     BridgeSubCommand = "clear"
	BridgeNameCmd      BridgeSubCommand = "name"
	BridgeStandingsCmd BridgeSubCommand = "standings"
	BridgeGridCmd      BridgeSubCommand = "grid"
)

var bridgeSubCmdHdlrs = map[BridgeSubCommand]CmdHandler{
	BridgeHelpCmd:      bridgeHelpCmdHandler,
	BridgeNewCmd:       bridgeNewCmdHandler,
	BridgePairingsCmd:  bridgePairingsCmdHandler,
	BridgeScoreCmd:     bridgeScoreCmdHandler,
	BridgeClearCmd:     bridgeClearCmdHandler,
	BridgeNameCmd:      bridgeNameCmdHandler,
	BridgeStandingsCmd: bridgeStandingsCmdHandler,
	BridgeGridCmd:      bridgeGridCmdHandler,
}

func bridgeCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := bridgeHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := bridgeSubCmdHdlrs[BridgeSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

func newResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

// subOptions indexes the options passed to the invoked subcommand by name
func subOptions(
	inter *discordgo.Interaction) map[string]*discordgo.ApplicationCommandInteractionDataOption {

	ret := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	data := inter.ApplicationCommandData()
	if len(data.Options) == 0 {
		return ret
	}
	for _, opt := range data.Options[0].Options {
		ret[opt.Name] = opt
	}

	return ret
}

func broadcastRequested(
	opts map[string]*discordgo.ApplicationCommandInteractionDataOption) bool {

	opt, ok := opts["broadcast"]
	return ok && opt.BoolValue()
}

//go:embed help.md
var helpText string

func bridgeHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	resp.Data.Content = truncateContent(helpText)
	return resp
}

func bridgeNewCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)
	date := bridge.DefaultEventDate(time.Now())
	if opt, ok := opts["date"]; ok && strings.TrimSpace(opt.StringValue()) != "" {
		date = strings.TrimSpace(opt.StringValue())
	}

	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	name := sessionName(inter)
	prev, err := loadSession(ctx, name)
	if err != nil {
		log.Printf("discordbot.new: not archiving previous tournament: %v", err)
	} else if prev.Scores.BoardsScored() > 0 {
		guild := strings.TrimSuffix(name, ".txt")
		if err := archiveSession(ctx, guild, prev); err != nil {
			resp.Data.Content = fmt.Sprintf("Error archiving previous tournament: %v",
				err)
			log.Printf("discordbot.new: %v", resp.Data.Content)
			return resp
		}
	}

	s := bridge.NewSession(date)
	if err := saveSession(ctx, name, s); err != nil {
		resp.Data.Content = fmt.Sprintf("Error starting tournament: %v", err)
		log.Printf("discordbot.new: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("Started a new tournament for %v.",
		bridge.FormatLongDate(date))
	return resp
}

func bridgePairingsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)
	opt, ok := opts["board"]
	if !ok {
		resp.Data.Content = "Please provide a board number."
		log.Printf("discordbot.pairings: %v", resp.Data.Content)
		return resp
	}
	board := int(opt.IntValue())

	sessionsMu.Lock()
	s, err := loadSession(ctx, sessionName(inter))
	sessionsMu.Unlock()
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching pairings: %v", err)
		log.Printf("discordbot.pairings: %v", resp.Data.Content)
		return resp
	}

	output, err := bridge.BuildPairingsOutput(s, board)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching pairings: %v", err)
		log.Printf("discordbot.pairings: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```", truncateContent(output))
	if broadcastRequested(opts) {
		resp.Data.Flags = 0
	}

	return resp
}

func bridgeScoreCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)
	boardOpt, ok := opts["board"]
	if !ok {
		resp.Data.Content = "Please provide a board number."
		log.Printf("discordbot.score: %v", resp.Data.Content)
		return resp
	}
	resultsOpt, ok := opts["results"]
	if !ok {
		resp.Data.Content = "Please provide the board's results."
		log.Printf("discordbot.score: %v", resp.Data.Content)
		return resp
	}
	board := int(boardOpt.IntValue())
	results, err := bridge.ParseResults(resultsOpt.StringValue())
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Invalid results: %v", err)
		log.Printf("discordbot.score: %v", resp.Data.Content)
		return resp
	}
	noCheck := false
	if opt, ok := opts["nocheck"]; ok {
		noCheck = opt.BoolValue()
	}

	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	name := sessionName(inter)
	s, err := loadSession(ctx, name)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error scoring board %v: %v", board, err)
		log.Printf("discordbot.score: %v", resp.Data.Content)
		return resp
	}
	s.ErrorChecking = !noCheck
	if err := s.SubmitBoard(board, results); err != nil {
		var ve *bridge.ValidationError
		if errors.As(err, &ve) {
			resp.Data.Content = fmt.Sprintf("Board %v not recorded.\n\n%v", board,
				err)
		} else {
			resp.Data.Content = fmt.Sprintf("Error scoring board %v: %v", board,
				err)
		}
		log.Printf("discordbot.score: %v", resp.Data.Content)
		return resp
	}
	if err := saveSession(ctx, name, s); err != nil {
		resp.Data.Content = fmt.Sprintf("Error scoring board %v: %v", board, err)
		log.Printf("discordbot.score: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("Board %v recorded.\n```\n%s```", board,
		truncateContent(bridge.BuildStandingsOutput(s)))
	if broadcastRequested(opts) {
		resp.Data.Flags = 0
	}

	return resp
}

func bridgeClearCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)
	opt, ok := opts["board"]
	if !ok {
		resp.Data.Content = "Please provide a board number."
		log.Printf("discordbot.clear: %v", resp.Data.Content)
		return resp
	}
	board := int(opt.IntValue())

	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	name := sessionName(inter)
	s, err := loadSession(ctx, name)
	if err == nil {
		err = s.ClearBoard(board)
	}
	if err == nil {
		err = saveSession(ctx, name, s)
	}
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error clearing board %v: %v", board, err)
		log.Printf("discordbot.clear: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("Board %v cleared.", board)
	return resp
}

func bridgeNameCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)
	opt, ok := opts["slot"]
	if !ok {
		resp.Data.Content = "Please provide a team number."
		log.Printf("discordbot.name: %v", resp.Data.Content)
		return resp
	}
	slot := int(opt.IntValue())
	teamName := ""
	if opt, ok := opts["name"]; ok {
		teamName = opt.StringValue()
	}

	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	name := sessionName(inter)
	s, err := loadSession(ctx, name)
	if err == nil {
		err = s.SetTeamName(slot, teamName)
	}
	if err == nil {
		err = saveSession(ctx, name, s)
	}
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error renaming team %v: %v", slot, err)
		log.Printf("discordbot.name: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("Team #%v is now %v.", slot, s.TeamName(slot))
	return resp
}

func bridgeStandingsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)

	sessionsMu.Lock()
	s, err := loadSession(ctx, sessionName(inter))
	sessionsMu.Unlock()
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching standings: %v", err)
		log.Printf("discordbot.standings: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(bridge.BuildStandingsOutput(s)))
	if broadcastRequested(opts) {
		resp.Data.Flags = 0
	}

	return resp
}

func bridgeGridCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)

	sessionsMu.Lock()
	s, err := loadSession(ctx, sessionName(inter))
	sessionsMu.Unlock()
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching scores: %v", err)
		log.Printf("discordbot.grid: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(bridge.BuildBoardScoresOutput(s)))
	if broadcastRequested(opts) {
		resp.Data.Flags = 0
	}

	return resp
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
