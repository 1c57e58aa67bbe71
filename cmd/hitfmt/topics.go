package main

import (
	"embed"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/idaholab/moose-language-support/pkg/cobrax/topics"
)

//go:embed topics/*.md
var topicFiles embed.FS

// installTopics adds the embedded help topics to rootCmd
func installTopics(rootCmd *cobra.Command) error {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}
	m, err := topics.Load(sub, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.RendererFor(os.Stdout),
	})
	if err != nil {
		return err
	}
	topics.Install(rootCmd, m)
	return nil
}
