package main

import "campusfeed/cmd/campusctl/commands"

func main() {
	commands.Execute()
}
