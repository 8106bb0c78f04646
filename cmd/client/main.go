package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"yaniv-client/internal/client"
	"yaniv-client/internal/game"
	"yaniv-client/internal/room"
	"yaniv-client/internal/storage"
)

const (
	defaultServerURL = "ws://localhost:3000/websocket"
	defaultDBPath    = "yaniv.db"

	// Logical board size the layout math works in; a real renderer
	// would substitute the device dimensions.
	boardWidth  = 390
	boardHeight = 844
)

func main() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Y", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("aniv", pterm.FgDarkGray.ToStyle()),
	).Render()

	serverURL := os.Getenv("YANIV_SERVER_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}
	dbPath := os.Getenv("YANIV_DB_PATH")
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open local storage: %v", err)
	}
	defer store.Close()

	profile := store.Profile()
	name, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Enter your nickname").
		WithDefaultValue(profile.NickName).
		Show()
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Player"
	}
	if name != profile.NickName {
		profile.NickName = name
		if err := store.SaveProfile(profile); err != nil {
			log.Printf("Failed to save profile: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gameStore := game.NewStore(game.Layout{Width: boardWidth, Height: boardHeight})
	roomStore := room.NewStore()

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	c, err := client.Dial(dialCtx, serverURL, gameStore, roomStore)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", serverURL, err)
	}
	defer c.Close()

	pterm.Info.Printfln("Connected to %s", serverURL)

	c.OnEvent = func(eventType string) {
		render(eventType, c, gameStore, roomStore, store)
	}

	done := make(chan error, 1)
	go func() {
		done <- c.Listen(ctx)
	}()

	user := room.Player{ID: c.SelfID(), NickName: name, AvatarIndex: profile.AvatarIndex}
	if err := c.QuickGame(ctx, user); err != nil {
		log.Printf("Failed to request a quick game: %v", err)
	}

	select {
	case <-ctx.Done():
		pterm.Info.Println("Shutting down")
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			pterm.Error.Printfln("Connection lost: %v", err)
		}
	}
}

// render prints a one-line snapshot after each inbound event. Stands
// in for the animated board of the full front-end.
func render(eventType string, c *client.Client, gameStore *game.Store, roomStore *room.Store, store *storage.Store) {
	switch eventType {
	case "room_error":
		pterm.Error.Printfln("Room error: %s", roomStore.Err())
		roomStore.ClearError()
	case "game_error":
		pterm.Error.Printfln("Game error: %s", gameStore.Err())
		gameStore.ClearError()
	case "player_joined":
		pterm.Info.Printfln("Players in room: %d", len(roomStore.Players()))
	case "game_initialized", "new_round":
		pterm.Info.Printfln("Round %d started, hand: %s (value %d)",
			gameStore.Round()+1, handString(gameStore), gameStore.HandValue())
	case "player_drew":
		if gameStore.MyTurn() {
			pterm.Info.Printfln("Your turn (%ds), hand: %s (value %d)",
				gameStore.RemainingTime(), handString(gameStore), gameStore.HandValue())
		}
	case "round_ended":
		if results, ok := gameStore.RoundResults(); ok {
			pterm.Info.Printfln("Round over, winner: %s (Yaniv by %s)",
				roomStore.PlayerName(results.WinnerID), roomStore.PlayerName(results.YanivCaller))
		}
	case "game_ended":
		stats := gameStore.Stats()
		self := stats[c.SelfID()]
		won := false
		for id, stat := range stats {
			pterm.Info.Printfln("%s: %d points", roomStore.PlayerName(id), stat.Score)
			if id == c.SelfID() && stat.PlayerStatus == "winner" {
				won = true
			}
		}
		if err := store.RecordMatch(roomStore.RoomID(), self.Score, won); err != nil {
			log.Printf("Failed to record match: %v", err)
		}
	}
}

func handString(gameStore *game.Store) string {
	hand := gameStore.SelfHand()
	names := make([]string, len(hand))
	for i, card := range hand {
		names[i] = card.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(names, ", "))
}
