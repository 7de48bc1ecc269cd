package main

import "github.com/smash-shell/smash/cmd/root"

func main() {
	root.Execute()
}
