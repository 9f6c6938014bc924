package main

import (
	"os"

	"github.com/pauloricf/chatSecure/cmd/chatsecure/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
