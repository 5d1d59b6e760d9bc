package main

import "github.com/Al69m/top10-streaming-fr/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
