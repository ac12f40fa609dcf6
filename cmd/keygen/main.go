package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piresc/nebengjek-settlement/internal/pkg/custody"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
)

var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "keygen",
		Short:         "Create and check the settlement operator key",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(generateCmd())
	root.AddCommand(verifyCmd())
	return root
}

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate an operator key split into an encrypted blob and a secret",
		Long: `Generate a new operator key. Three lines are printed:
the encrypted key (OPERATOR_ENCRYPTED_KEY), the secret (OPERATOR_KEY_SECRET)
and the operator address. Store the first two in separate secret stores.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sealed, err := custody.Generate()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, sealed.Blob)
			fmt.Fprintln(out, sealed.Secret)
			fmt.Fprintln(out, sealed.Address)
			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	var blob, secret string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Recover the operator key and print its address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := custody.Recover(blob, secret)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ledger.PublicKeyOf(priv).String())
			return nil
		},
	}

	cmd.Flags().StringVar(&blob, "blob", os.Getenv("OPERATOR_ENCRYPTED_KEY"), "Encrypted operator key")
	cmd.Flags().StringVar(&secret, "secret", os.Getenv("OPERATOR_KEY_SECRET"), "Operator key secret")
	return cmd
}
