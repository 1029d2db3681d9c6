package main

import "hotel-ops-backend/commands"

func main() {
	commands.Execute()
}
