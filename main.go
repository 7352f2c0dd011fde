package main

import "github.com/nvidal/clockfill/cmd"

func main() {
	cmd.Execute()
}
