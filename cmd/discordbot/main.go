/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/bridgescore/internal"
	"github.com/mikeb26/bridgescore/s3store"

	_ "embed"
)

var cfg internal.Config
var botPubKey ed25519.PublicKey
var client *discordgo.Session

type TopLevelCommand string

const (
	BridgeCmd TopLevelCommand = "bridge"
)

type CmdHandler func(ctx context.Context,
	i *discordgo.Interaction) *discordgo.InteractionResponse

var topLevelCmdHdlrs = map[TopLevelCommand]CmdHandler{
	BridgeCmd: bridgeCmdHandler,
}

func interactionHandler(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, botPubKey) {
		log.Printf("discordbot.int: failed to verify")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("discordbot.int: failed to read request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		log.Printf("discordbot.int: failed to unmarshal interaction: err:%v body:%v",
			err, body)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := &discordgo.InteractionResponse{}
	if inter.Type == discordgo.InteractionPing {
		resp.Type = discordgo.InteractionResponsePong
	} else if inter.Type == discordgo.InteractionApplicationCommand {
		hdlr, ok :=
			topLevelCmdHdlrs[TopLevelCommand(inter.ApplicationCommandData().Name)]
		if !ok {
			resp.Type = discordgo.InteractionResponseChannelMessageWithSource
			resp.Data = &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("unknown command '%v'",
					inter.ApplicationCommandData().Name),
				Flags: discordgo.MessageFlagsEphemeral,
			}
		} else {
			resp = hdlr(r.Context(), &inter)
		}
	} else {
		log.Printf("discordbot.int: unimplemented interation type %v: inter:%v",
			inter.Type, inter)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		log.Printf("discordbot.int: failed to marshal resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(rawResp)
	if err != nil {
		log.Printf("discordbot.int: failed to write resp: err:%v", err)
	}
}

func initBot(ctx context.Context) {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))

	var err error
	cfg, err = internal.LoadConfig()
	if err != nil {
		log.Fatalf("discordbot.init: %v", err)
	}

	pubKeyBytes, err := hex.DecodeString(strings.TrimSpace(cfg.BotPubKey))
	if err != nil {
		log.Fatalf("discordbot.init: Failed to parse public key: %v", err)
	}
	botPubKey = ed25519.PublicKey(pubKeyBytes)

	client, err = discordgo.New("Bot " + strings.TrimSpace(cfg.BotToken))
	if err != nil {
		log.Fatalf("dicordbot.init: Failed to initialize discord client: %v", err)
	}

	store := s3store.New(ctx, cfg.Bucket, cfg.GzipScores, true)
	if err := store.Init(); err != nil {
		log.Fatalf("discordbot.init: Failed to initialize session store: %v",
			err)
	}
	sessions = store
}

//go:embed lastupdate.hash
var lastCmdUpdateHash string

func shouldUpdateCmdRegistration(cmd *discordgo.ApplicationCommand) bool {
	cmdJson, err := json.Marshal(cmd)
	if err != nil {
		log.Fatalf("discordbot.reg: failed to marshal cmd: %v", err)
		return false
	}
	hasher := sha256.New()
	hasher.Write(cmdJson)
	hash := hasher.Sum(nil)
	hexString := hex.EncodeToString(hash)

	shouldUpdate := (hexString != strings.TrimSpace(lastCmdUpdateHash))

	if shouldUpdate {
		log.Printf("discordbot.reg: updating cmd reg; please update lastupdate.hash to %v",
			hexString)
	}

	return shouldUpdate
}

func boardOption(required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "board",
		Description: "Board number (1-20)",
		Required:    required,
	}
}

func broadcastOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "broadcast",
		Description: "Share with the rest of the channel instead of only to you (default is false)",
		Required:    false,
	}
}

func bridgeCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        string(BridgeCmd),
		Description: "Howell bridge tournament scoring; try /bridge help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(BridgeHelpCmd),
				Description: "Show usage for bridge",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(BridgeNewCmd),
				Description: "Start a new tournament",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "date",
						Description: "Event date as mm/dd/yyyy (default is today)",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(BridgePairingsCmd),
				Description: "Show who plays who on a board",
				Options: []*discordgo.ApplicationCommandOption{
					boardOption(true),
					broadcastOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(BridgeScoreCmd),
				Description: "Record the results of a board",
				Options: []*discordgo.ApplicationCommandOption{
					boardOption(true),
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "results",
						Description: "Six results in team order, e.g. 2,1x,1x,x,x,0",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "nocheck",
						Description: "Skip board consistency checks (default is false)",
						Required:    false,
					},
					broadcastOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(BridgeClearCmd),
				Description: "Remove the results of a board",
				Options: []*discordgo.ApplicationCommandOption{
					boardOption(true),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(BridgeNameCmd),
				Description: "Rename a team",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "slot",
						Description: "Team number (1-6)",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Team name (default reverts to Team #n)",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(BridgeStandingsCmd),
				Description: "Show the current standings",
				Options: []*discordgo.ApplicationCommandOption{
					broadcastOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(BridgeGridCmd),
				Description: "Show every board's results",
				Options: []*discordgo.ApplicationCommandOption{
					broadcastOption(),
				},
			},
		},
	}
}

func registerSlashCommands() {
	cmd := bridgeCommand()

	if cfg.BotCmdID == "" {
		created, err := client.ApplicationCommandCreate(cfg.BotAppID, "", cmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to register %v: %v", cmd.Name,
				err)
			return
		}

		log.Printf("discordbot.reg: registered %v(cmdID:%v)", created.Name,
			created.ID)
	} else if shouldUpdateCmdRegistration(cmd) {
		updated, err := client.ApplicationCommandEdit(cfg.BotAppID, "",
			cfg.BotCmdID, cmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to update %v: %v", cmd.Name,
				err)
			return
		}

		log.Printf("discordbot.reg: updated %v(cmdID:%v)", updated.Name,
			updated.ID)
	}
}

func main() {
	initBot(context.Background())
	go registerSlashCommands()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	log.Printf("discordbot.main: starting server on %v%v", hostname,
		cfg.ListenAddr)

	http.HandleFunc("/DiscordBot/Interaction", interactionHandler)
	if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
		log.Fatalf("discordbot.main: Serve failed: %v", err)
	}

	log.Printf("discordbot.main: exiting")
}
