// cmd/botctl/main.go

// botctl is the operator console for the lobby bot: room CRUD, live
// watching, and session management against a running backend.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/astrolabio1417/legacy-osu-bot/internal/botclient"
	"github.com/astrolabio1417/legacy-osu-bot/internal/config"
	"github.com/astrolabio1417/legacy-osu-bot/internal/models"
)

const usage = `usage: botctl <command> [flags]

commands:
  enums                     print the backend's valid-value sets
  list                      print the current room listing
  watch [-stream]           continuously watch rooms and session
  create -f form.json       create a room from a form file
  update -id ID -f form.json  update an existing room
  delete -id ID             delete a room
  login -u USER [-p PASS]   authenticate as operator
  logout                    end the session
  start | stop              toggle the backend IRC connection (admin)
`

func main() {
	logger := logrus.New()
	cfg := config.Get()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	app, err := botclient.New(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to build client: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, app, os.Args[1], os.Args[2:]); err != nil {
		logger.Fatal(err)
	}
}

func run(ctx context.Context, app *botclient.App, command string, args []string) error {
	switch command {
	case "enums":
		return cmdEnums(ctx, app)
	case "list":
		return cmdList(ctx, app)
	case "watch":
		return cmdWatch(ctx, app, args)
	case "create":
		return cmdCreate(ctx, app, args)
	case "update":
		return cmdUpdate(ctx, app, args)
	case "delete":
		return cmdDelete(ctx, app, args)
	case "login":
		return cmdLogin(ctx, app, args)
	case "logout":
		if !app.Service().Logout(ctx) {
			return fmt.Errorf("logout failed")
		}
		return nil
	case "start", "stop":
		return cmdIRC(ctx, app, command)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func cmdEnums(ctx context.Context, app *botclient.App) error {
	enums, err := app.Client().Enums(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch enums: %w", err)
	}
	out, _ := json.MarshalIndent(enums, "", "  ")
	fmt.Println(string(out))
	return nil
}

func cmdList(ctx context.Context, app *botclient.App) error {
	rooms, err := app.Client().ListRooms(ctx)
	if err != nil {
		return fmt.Errorf("failed to list rooms: %w", err)
	}
	printRooms(rooms)
	return nil
}

func cmdWatch(ctx context.Context, app *botclient.App, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	useStream := fs.Bool("stream", config.Get().StreamEnabled, "subscribe to the websocket snapshot stream instead of polling the room list")
	_ = fs.Parse(args)

	return app.Watch(ctx, *useStream, func(view botclient.WatchView) {
		fmt.Printf("\nsession: %s admin=%t irc=%t\n",
			orDash(view.Session.Username), view.Session.IsAdmin, view.Session.IsIRCRunning)
		printRooms(view.Rooms)
	})
}

func cmdCreate(ctx context.Context, app *botclient.App, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	file := fs.String("f", "", "path to room form JSON")
	_ = fs.Parse(args)

	form, err := botclient.LoadForm(*file)
	if err != nil {
		return err
	}
	if ok := app.CreateRoom(ctx, form); !ok {
		return fmt.Errorf("create failed; draft preserved in %s", *file)
	}
	return nil
}

func cmdUpdate(ctx context.Context, app *botclient.App, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	id := fs.String("id", "", "room id")
	file := fs.String("f", "", "path to room form JSON")
	_ = fs.Parse(args)

	form, err := botclient.LoadForm(*file)
	if err != nil {
		return err
	}
	if ok := app.UpdateRoom(ctx, *id, form); !ok {
		return fmt.Errorf("update failed; draft preserved in %s", *file)
	}
	return nil
}

func cmdDelete(ctx context.Context, app *botclient.App, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "room id")
	_ = fs.Parse(args)

	app.DeleteRoom(ctx, *id)
	return nil
}

func cmdLogin(ctx context.Context, app *botclient.App, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	user := fs.String("u", "", "operator username")
	pass := fs.String("p", "", "operator password (or OSUBOT_PASSWORD)")
	_ = fs.Parse(args)

	password := *pass
	if password == "" {
		password = os.Getenv("OSUBOT_PASSWORD")
	}
	if !app.Service().Login(ctx, *user, password) {
		return fmt.Errorf("login failed")
	}
	return nil
}

func cmdIRC(ctx context.Context, app *botclient.App, command string) error {
	session, err := app.Client().GetSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch session: %w", err)
	}
	var ok bool
	if command == "stop" {
		ok = app.Service().StopIRC(ctx, session)
	} else {
		ok = app.Service().StartIRC(ctx, session)
	}
	if !ok {
		return fmt.Errorf("%s failed", command)
	}
	return nil
}

func printRooms(rooms []models.Room) {
	if len(rooms) == 0 {
		fmt.Println("no rooms")
		return
	}
	fmt.Printf("%-36s  %-24s  %-4s  %-15s  %-9s  %s\n",
		"ID", "NAME", "SIZE", "BOT MODE", "LIFECYCLE", "USERS")
	for _, r := range rooms {
		fmt.Printf("%-36s  %-24s  %-4d  %-15s  %-9s  %d\n",
			r.ID, r.Name, r.RoomSize, r.BotMode, lifecycle(r), len(r.Users))
	}
}

// lifecycle renders the server-owned flags as a compact column:
// C=connected, R=created, F=configured.
func lifecycle(r models.Room) string {
	marks := []string{"-", "-", "-"}
	if r.IsConnected {
		marks[0] = "C"
	}
	if r.IsCreated {
		marks[1] = "R"
	}
	if r.IsConfigured {
		marks[2] = "F"
	}
	return strings.Join(marks, "")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
