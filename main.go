package main

import "github.com/jsphweid/makamdex/cmd"

func main() {
	cmd.Execute()
}
