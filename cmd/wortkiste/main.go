package main

import "wortkiste/cmd/wortkiste/cmd"

func main() {
	cmd.Execute()
}
