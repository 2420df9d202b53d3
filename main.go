package main

import "github/hdforge/go-wallet/cmd"

func main() {
	cmd.Execute()
}
