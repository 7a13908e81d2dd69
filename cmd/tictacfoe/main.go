// Tic Tac Foe plays classic and ultimate tic-tac-toe against Monte
// Carlo search agents, either interactively in the terminal or as a
// JSON API server.
//
// Run it with no flags for the terminal game, or with -serve to
// expose the HTTP API instead:
//
//	tictacfoe
//	tictacfoe -serve -addr :8080 -rounds 2000
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/muesli/termenv"

	"github.com/Cr3sp1/TicTacFoe/internal/server/httpserver"
	"github.com/Cr3sp1/TicTacFoe/internal/session"
	"github.com/Cr3sp1/TicTacFoe/internal/tui"
)

func main() {
	serve := flag.Bool("serve", false, "run the HTTP API server instead of the terminal game")
	addr := flag.String("addr", ":8080", "address the HTTP server listens on")
	rounds := flag.Int("rounds", 0, "search rounds per decision for the strong agent (0 = default)")
	flag.Parse()

	if *serve {
		handler := httpserver.NewServer(session.NewService(*rounds))
		log.Printf("listening on %s", *addr)
		if err := http.ListenAndServe(*addr, handler); err != nil {
			log.Fatal(err)
		}
		return
	}

	app := tui.New(os.Stdin, os.Stdout, termenv.EnvColorProfile(), *rounds)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
