package main

import "github.com/FitoDomik/pdf-to-docx/cmd/scan2docx/cmd"

func main() {
	cmd.Execute()
}
