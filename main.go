package main

import "github.com/Vilsol/memdbg/cmd"

func main() {
	cmd.Execute()
}
