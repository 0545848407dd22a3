package main

import (
	"context"

	"github.com/inchworksinc/release-notes/cmd"
)

func main() {
	ctx := context.Background()
	cmd.Execute(ctx)
}
