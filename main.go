package main

import (
	"os"

	"github.com/FrederikvSvane/bachelor-projekt/cmd/scheduler"
)

func main() {
	os.Exit(scheduler.Execute())
}
