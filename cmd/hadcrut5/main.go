package main

import "github.com/madrisan/HadCRUT5/internal/command"

func main() {
	command.Execute()
}
