package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat [question]",
	Short: "Ask the nutrition assistant a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		reply, err := a.chat.Ask(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return errors.New("chat request failed")
		}

		fmt.Println(reply)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
