package main

import "imgbase/cmd"

func main() {
	cmd.Execute()
}
