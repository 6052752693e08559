package main

import (
	"context"
	"fmt"
	"os"

	"github.com/DevBaweja/dating-app-backend/internal"
)

func main() {
	ctx := context.Background()
	if err := internal.Run(ctx, os.Stdout, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
