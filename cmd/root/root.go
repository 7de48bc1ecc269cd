package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smash-shell/smash/shell"
)

var configFile string
var cmdPrompt string

var rootCmd = &cobra.Command{
	Use:   "smash",
	Short: "A simple interactive command interpreter",
	Long:  `smash reads one command per line and dispatches it to a small set of built-ins. Type 'help' at the prompt to list them.`,
	Run: func(cmd *cobra.Command, args []string) {
		if configFile != "" {
			viper.SetConfigFile(configFile)

			err := viper.ReadInConfig()
			if err != nil {
				fmt.Printf("Unable to read configuration file: %s, please check whether the path is correct \n", configFile)
				os.Exit(1)
			}
		} else {
			viper.Set("shell.prompt", cmdPrompt)
		}

		opts := shell.DefaultOptions()
		if prompt := viper.GetString("shell.prompt"); prompt != "" {
			opts.Prompt = prompt
		}

		if err := shell.NewShell(opts).Run(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func Execute() {
	rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "cpath", "f", "", "Path of the configuration file in yaml, json and toml format (optional)")
	rootCmd.Flags().StringVarP(&cmdPrompt, "prompt", "p", shell.DefaultPrompt, "Prompt displayed before each line of input")
}
