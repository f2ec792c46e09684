package main

import "github.com/masmgr/versioncheck/cmd"

func main() {
	cmd.Run()
}
