package main

import "github.com/masmgr/gitcommits-mcp/cmd"

func main() {
	cmd.Run()
}
