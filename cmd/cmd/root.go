package cmd

import (
	"github.com/spf13/cobra"
)

const AppName = "tinygif"

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: AppName + " - streaming GIF87a/GIF89a decoder",
	}

	rootCmd.AddCommand(DefineInspectCommand())
	rootCmd.AddCommand(DefineFramesCommand())
	rootCmd.AddCommand(DefineRenderCommand())
	rootCmd.AddCommand(DefineMountCommand())

	return rootCmd.Execute()
}
