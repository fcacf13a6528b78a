package main

import "techfeed/cmd"

func main() {
	cmd.Execute()
}
