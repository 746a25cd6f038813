package main

import "github.com/xRetart/snake/internal/game"

func main() {
	game.RunDesktop()
}
