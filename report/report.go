package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/trigon/region"
	"github.com/katalvlaran/trigon/triangles"
)

// Option configures the listing.
type Option func(*Options)

// Options holds the configurable parts of a listing.
type Options struct {
	// BaseRegions, if non-empty, is printed as an inventory section ahead
	// of the triangles.
	BaseRegions []region.Region

	// Colorize highlights headings and the grand total with ANSI colors.
	Colorize bool
}

// WithBaseRegions returns an Option that prepends the base-region inventory.
func WithBaseRegions(rs []region.Region) Option {
	return func(o *Options) { o.BaseRegions = rs }
}

// WithColor returns an Option that enables ANSI highlighting. The global
// color.NoColor switch still applies, so piped output stays clean.
func WithColor() Option {
	return func(o *Options) { o.Colorize = true }
}

// Write renders res to w. The grand total line restates Result.Sum, which
// by construction equals the sum of the listed values.
func Write(w io.Writer, res *triangles.Result, opts ...Option) error {
	ropts := Options{}
	for _, fn := range opts {
		fn(&ropts)
	}

	heading := fmt.Sprintf
	total := fmt.Sprintf
	if ropts.Colorize {
		heading = color.New(color.FgCyan, color.Bold).Sprintf
		total = color.New(color.FgGreen, color.Bold).Sprintf
	}

	if len(ropts.BaseRegions) > 0 {
		if _, err := fmt.Fprintf(w, "%s\n\n", heading("Base regions (count = %d)", len(ropts.BaseRegions))); err != nil {
			return err
		}
		for _, r := range ropts.BaseRegions {
			if _, err := fmt.Fprintf(w, "  %s\n", r); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%s\n\n", heading("Triangular regions (count = %d)", res.Count())); err != nil {
		return err
	}
	for _, tr := range res.Triangles {
		if _, err := fmt.Fprintf(w, "  %s\n", tr); err != nil {
			return err
		}
	}
	if res.Truncated {
		if _, err := fmt.Fprintf(w, "\n  (search truncated at the configured subset-size bound)\n"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s\n", total("Sum of all triangular region values = %d", res.Sum))

	return err
}
