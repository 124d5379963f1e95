package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/saeidalz13/battleship-setup/api"
	"github.com/saeidalz13/battleship-setup/db"
	"github.com/saeidalz13/battleship-setup/internal"
	"github.com/saeidalz13/battleship-setup/internal/config"
	"github.com/saeidalz13/battleship-setup/internal/tui"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}
	log.SetPrefix("[FLEET] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bgm := mb.NewBattleshipGameManager()

	if cfg.Interactive {
		game := bgm.CreateGame()
		if _, err := tea.NewProgram(tui.New(game, mb.RoleHost, cfg.Locale), tea.WithContext(ctx)).Run(); err != nil {
			log.Fatalln(err)
		}
		if _, err := io.WriteString(os.Stdout, game.OwnerView(mb.RoleHost).String()); err != nil {
			log.Fatalln(err)
		}
		return
	}

	optFuncs := []api.Option{api.WithLocale(cfg.Locale), api.WithJSON(cfg.JSON)}
	if cfg.AnalyticsEnabled() {
		serverIpNet, err := internal.ServerIpNet()
		if err != nil {
			log.Fatalln(err)
		}
		analytics := db.MustOpenAnalytics(ctx, cfg.DatabaseUrl, cfg.MigrationDir, serverIpNet)
		defer analytics.Close()

		optFuncs = append(optFuncs, api.WithAnalytics(analytics.DbManager.Analytics))
		log.Println("placement analytics enabled, server ip:", serverIpNet.IP)
	}

	var input io.Reader = os.Stdin
	if cfg.Script != "" {
		f, err := os.Open(cfg.Script)
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		input = f
	}

	rp := api.NewRequestProcessor(bgm, optFuncs...)
	if err := rp.Run(ctx, input, os.Stdout); err != nil {
		log.Fatalln(err)
	}
}
