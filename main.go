package main

import "github.com/josephlewis42/juokse/cmd"

func main() {
	cmd.Execute()
}
