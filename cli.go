//go:build cli
// +build cli

package main

import (
	_ "grocery.GO/custom"

	_ "grocery.GO/cron/jobs"

	"grocery.GO/cmd"
	"grocery.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
