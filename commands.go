// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/sharenote/auth"
	"github.com/danielhkuo/sharenote/cliparse"
	"github.com/danielhkuo/sharenote/models"
	"github.com/danielhkuo/sharenote/notes"
	"github.com/danielhkuo/sharenote/slug"
)

// newShortCodeCmd prints the address a new note with the given title gets.
func newShortCodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "shortcode <title>",
		Short:        "Print the slug, short code and filename for a note title",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := cliparse.LoadSecret(cmd.Flags())
			if err != nil {
				return err
			}

			title := args[0]
			if notes.IsIndexTitle(title) {
				fmt.Fprintf(cmd.OutOrStdout(), "filename: %s.html\n", notes.IndexName)
				return nil
			}

			s := slug.Make(title)
			code := auth.ShortCode(title, secret)
			fmt.Fprintf(cmd.OutOrStdout(), "slug:     %s\n", s)
			fmt.Fprintf(cmd.OutOrStdout(), "code:     %s\n", code)
			fmt.Fprintf(cmd.OutOrStdout(), "filename: %s-%s.html\n", s, code)
			return nil
		},
	}
	cliparse.RegisterSecretFlags(cmd.Flags())
	return cmd
}

// newSignCmd prints auth headers for calling the API by hand.
func newSignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "sign [nonce]",
		Short:        "Print x-sharenote-nonce and x-sharenote-key header values",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := cliparse.LoadSecret(cmd.Flags())
			if err != nil {
				return err
			}

			nonce := auth.GenerateNonce()
			if len(args) == 1 {
				nonce = args[0]
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", models.HeaderNonce, nonce)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", models.HeaderKey, auth.Sign(nonce, secret))
			return nil
		},
	}
	cliparse.RegisterSecretFlags(cmd.Flags())
	return cmd
}
