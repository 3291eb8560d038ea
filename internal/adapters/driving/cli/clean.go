package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var cleanCleaning cleaningFlags

var cleanCmd = &cobra.Command{
	Use:   "clean [text...]",
	Short: "Clean text from arguments or stdin",
	Long: `Cleans the given text and prints the result. Arguments are joined
with spaces; with no arguments the whole of stdin is read and cleaned as
one string.

Example:
  echo "ሰላም፣ ዓለም።" | cleanhub clean`,
	RunE: runClean,
}

func init() {
	cleanCleaning.register(cleanCmd)
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	if preprocessService == nil {
		return errors.New("preprocess service not configured")
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return errNoInput
	}

	cleaned, err := preprocessService.CleanText(text, cleanCleaning.resolve(cmd))
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), cleaned)
	return nil
}
