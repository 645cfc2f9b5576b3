package cmd

import (
	"io"
	"io/ioutil"

	"github.com/Vilsol/memdbg/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	dumpCmd.Flags().Int("row-width", 32, "Bytes per row")
	dumpCmd.Flags().Int("group-width", 8, "Bytes per group")
	dumpCmd.Flags().Bool("compact", false, "Do not pad the last row to the full row width")
	dumpCmd.Flags().Bool("highlight", false, "Paint non-printable bytes red")

	_ = viper.BindPFlag("dump.row_width", dumpCmd.Flags().Lookup("row-width"))
	_ = viper.BindPFlag("dump.group_width", dumpCmd.Flags().Lookup("group-width"))
	_ = viper.BindPFlag("dump.compact", dumpCmd.Flags().Lookup("compact"))
	_ = viper.BindPFlag("dump.highlight", dumpCmd.Flags().Lookup("highlight"))

	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump [file...]",
	Short: "Dump files or stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := config.Formatter()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if len(args) == 0 {
			args = []string{"-"}
		}

		for i, name := range args {
			data, err := readInput(cmd.InOrStdin(), name)
			if err != nil {
				return err
			}

			if len(args) > 1 {
				if i > 0 {
					if _, err := io.WriteString(out, "\n"); err != nil {
						return err
					}
				}
				if _, err := io.WriteString(out, name+":\n"); err != nil {
					return err
				}
			}

			if _, err := f.WriteTo(out, data); err != nil {
				return err
			}
		}

		return nil
	},
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		data, err := ioutil.ReadAll(stdin)
		return data, errors.Wrap(err, "error reading stdin")
	}

	data, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %s", name)
	}

	return data, nil
}
