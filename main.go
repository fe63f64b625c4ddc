package main

import "github.com/KaramelBytes/reelviz-cli/cmd"

func main() {
	cmd.Execute()
}
