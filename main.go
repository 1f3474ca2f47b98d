package main

import "opensilex-client/cmd"

func main() {
	cmd.Execute()
}
