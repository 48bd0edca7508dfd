package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-ui/internal/errors"
	"github.com/vango-dev/vango-ui/pkg/popover"
)

func placeCmd() *cobra.Command {
	var (
		trigger string
		content string
		side    string
		align   string
		offset  float64
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute where popover content is drawn",
		Long: `Resolve the top-left corner of popover content from the trigger's
bounding box, the content size and the placement.

Examples:
  vango-ui place --trigger 100,40,80,32 --content 200x120
  vango-ui place --trigger 100,40,80,32 --content 200x120 --side right --align start --offset 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRect(trigger)
			if err != nil {
				return err
			}
			size, err := parseSize(content)
			if err != nil {
				return err
			}
			s, err := popover.ParseSide(side)
			if err != nil {
				return errors.New("E400").WithDetail("--side").Wrap(err)
			}
			a, err := popover.ParseAlign(align)
			if err != nil {
				return errors.New("E400").WithDetail("--align").Wrap(err)
			}

			p := popover.Placement{Side: s, Align: a, Offset: offset}
			pt := popover.Resolve(r, size, p)
			fmt.Fprintf(cmd.OutOrStdout(), "%s x=%g y=%g\n", p, pt.X, pt.Y)
			return nil
		},
	}

	cmd.Flags().StringVar(&trigger, "trigger", "", "Trigger box as x,y,width,height")
	cmd.Flags().StringVar(&content, "content", "", "Content size as WIDTHxHEIGHT")
	cmd.Flags().StringVar(&side, "side", "bottom", "Side: top, right, bottom, left")
	cmd.Flags().StringVar(&align, "align", "center", "Alignment: start, center, end")
	cmd.Flags().Float64Var(&offset, "offset", 0, "Gap between trigger and content")
	cmd.MarkFlagRequired("trigger")
	cmd.MarkFlagRequired("content")
	return cmd
}

// parseRect parses "x,y,width,height".
func parseRect(s string) (popover.Rect, error) {
	v, err := parseFloats(s, ",", 4)
	if err != nil {
		return popover.Rect{}, errors.New("E400").WithDetailf("--trigger %q: want x,y,width,height", s).Wrap(err)
	}
	return popover.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

// parseSize parses "WIDTHxHEIGHT".
func parseSize(s string) (popover.Size, error) {
	v, err := parseFloats(strings.ToLower(s), "x", 2)
	if err != nil {
		return popover.Size{}, errors.New("E400").WithDetailf("--content %q: want WIDTHxHEIGHT", s).Wrap(err)
	}
	return popover.Size{Width: v[0], Height: v[1]}, nil
}

func parseFloats(s, sep string, n int) ([]float64, error) {
	parts := strings.Split(s, sep)
	if len(parts) != n {
		return nil, fmt.Errorf("got %d values", len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
