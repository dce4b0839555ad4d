// cmd/rustoveva/main.go
package main

import (
	"rustoveva/internal/app"
	"rustoveva/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
