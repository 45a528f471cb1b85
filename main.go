package main

import "github.com/transcriper/diarize/internal/cli"

func main() {
	cli.Main()
}
