// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/panchayat/scenario"
)

// Write renders an outcome as a plain-text report
func Write(w io.Writer, out scenario.Outcome) error {
	p := &printer{w: w}

	p.printf("Election: %s\n", out.Scenario)
	p.printf("Registered voters: %s, votes cast: %s\n\n",
		humanize.Comma(int64(out.Registered)), humanize.Comma(int64(out.Voted)))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tCANDIDATE\tPARTY\tVOTES")
	for i, r := range out.Results {
		fmt.Fprintf(tw, "%s\t%s (%s)\t%s\t%s\n",
			humanize.Ordinal(i+1), r.Name, r.ID, r.Party, humanize.Comma(int64(r.Votes)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if out.HasWinner {
		p.printf("\nWinner: %s (%s) with %s\n", out.Winner.Name, out.Winner.Party, plural(out.Winner.Votes, "vote"))
	} else {
		p.printf("\nWinner: none\n")
	}

	if rejected := out.Rejected(); len(rejected) > 0 {
		p.printf("\nRejected (%s):\n", humanize.Comma(int64(len(rejected))))
		for _, e := range rejected {
			switch e.Kind {
			case scenario.KindVoteFailed:
				p.printf("  vote %s -> %s: %s\n", e.VoterID, e.CandidateID, e.Reason)
			default:
				p.printf("  voter %s: %s\n", e.VoterID, e.Reason)
			}
		}
	}

	if out.HasRegions {
		p.printf("\nVotes reported across regions: %s\n", humanize.Comma(int64(out.RegionVotes)))
	}
	if !out.TallyConsistent {
		p.printf("\nWARNING: independent tally does not match the results\n")
	}

	return p.err
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return humanize.Comma(int64(n)) + " " + word + "s"
}

// printer keeps the first write error
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
