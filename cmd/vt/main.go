package main

import "votetrack/cmd/vt/root"

func main() {
	root.Execute()
}
