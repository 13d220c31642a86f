package main

import "github.com/shaharia-lab/uploadnotify/cmd"

func main() {
	cmd.Execute()
}
