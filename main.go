package main

import "github.com/nextlevelbuilder/dayclaw/cmd"

func main() {
	cmd.Execute()
}
