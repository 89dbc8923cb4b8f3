package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/meigma/ziphdr"
)

type dosTimeView struct {
	Packed uint32          `json:"packed"`
	Hex    string          `json:"hex"`
	Fields ziphdr.DateTime `json:"fields"`
}

func newDOSTimeCommand(ctx *commandContext) *cobra.Command {
	var from string
	var utc bool

	cmd := &cobra.Command{
		Use:   "dostime [packed]",
		Short: "Unpack an MS-DOS date-time or pack one with --from",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var packed uint32
			switch {
			case from != "" && len(args) > 0:
				return errors.New("pass either a packed value or --from, not both")
			case from != "":
				t, err := time.Parse(time.RFC3339, from)
				if err != nil {
					return fmt.Errorf("parse --from: %w", err)
				}
				packed = ziphdr.PackTime(t, utc)
			case len(args) == 1:
				v, err := strconv.ParseUint(args[0], 0, 32)
				if err != nil {
					return fmt.Errorf("parse packed value %q: %w", args[0], err)
				}
				packed = uint32(v)
			default:
				return cmd.Help()
			}

			view := dosTimeView{
				Packed: packed,
				Hex:    fmt.Sprintf("0x%08x", packed),
				Fields: ziphdr.UnpackTime(packed),
			}
			ctx.logger(cmd).Debug("dos time", "packed", packed, "from", from)

			if ctx.json {
				return writeJSON(cmd, view)
			}
			f := view.Fields
			fmt.Fprintf(cmd.OutOrStdout(), "%d (%s) %04d-%02d-%02d %02d:%02d:%02d\n",
				view.Packed, view.Hex, f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "RFC 3339 time to pack")
	cmd.Flags().BoolVar(&utc, "utc", false, "Pack the calendar fields in UTC instead of local time")
	return cmd
}
