package main

import (
	stdlog "log"

	canvasrecorder "github.com/conundrumer/canvas-recorder"
)

func main() {
	if err := canvasrecorder.Run(); err != nil {
		stdlog.Fatal(err)
	}
}
