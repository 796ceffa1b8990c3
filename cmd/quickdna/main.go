// cmd/quickdna/main.go
package main

import (
	"quickdna/internal/app"
	"quickdna/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
