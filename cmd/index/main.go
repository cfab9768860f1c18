package main

import (
	"context"

	"indexmodel/cmd"

	"go.uber.org/zap"
)

func main() {
	if err := cmd.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		zap.S().Fatalw("index failed", "error", err)
	}
}
