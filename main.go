package main

import "github.com/burjlab/ruhani/cmd"

func main() {
	cmd.Execute()
}
