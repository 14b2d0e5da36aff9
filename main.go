package main

import "github.com/jonesrussell/pulseboard/cmd"

func main() {
	cmd.Execute()
}
