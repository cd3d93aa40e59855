package main

import "github.com/mouse-blink/scorespec/cmd"

func main() {
	cmd.Execute()
}
