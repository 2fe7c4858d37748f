package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd(g *globalFlags) *cobra.Command {
	var (
		chain chainFlags
		count int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print generated names",
		Long:  "Trains a generator on the corpus and prints --count names, one per line.",
		Example: `  namegen generate -c romans.txt -n 5
  namegen generate -c dwarfs.txt -m cluster -p '^[a-z]{4,8}$' --seed 42
  namegen generate --profile romans`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count <= 0 {
				return ErrInvalidCount
			}
			s, err := chain.load(cmd, g)
			if err != nil {
				return err
			}
			log, err := g.logger(cmd, s)
			if err != nil {
				return err
			}
			gen, err := buildNamer(s, log)
			if err != nil {
				return err
			}

			names, err := gen.GenerateN(cmd.Context(), count)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
	chain.register(cmd.Flags())
	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of names")
	return cmd
}
