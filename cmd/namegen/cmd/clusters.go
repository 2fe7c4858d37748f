package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/namegen"
)

func newClustersCmd() *cobra.Command {
	var extraVowels string

	cmd := &cobra.Command{
		Use:   "clusters word...",
		Short: "Show how words split into vowel and consonant clusters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			isVowel := namegen.IsRomanceVowel
			if extraVowels != "" {
				isVowel = namegen.VowelsIncluding(extraVowels)
			}

			out := cmd.OutOrStdout()
			for _, word := range args {
				clusters, err := namegen.Clusterize(namegen.Normalize(word), isVowel)
				if err != nil {
					return fmt.Errorf("%q: %w", word, err)
				}
				fmt.Fprintf(out, "%s\t%s\n", word, strings.Join(clusters, " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&extraVowels, "vowels", "", "Extra letters treated as vowels")
	return cmd
}
