package main

import (
	"fmt"
	"io"
	"os"
	"pathfinder/internal/catalog"
	"pathfinder/internal/engine"
	"pathfinder/internal/model"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var file string

	root := &cobra.Command{
		Use:          "catalogcheck",
		Short:        "Inspect a weights catalog offline",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&file, "file", "f", "", "weights CSV (defaults to the bundled catalog)")

	load := func() (*catalog.Catalog, error) {
		if file == "" {
			return catalog.Default(), nil
		}
		return catalog.LoadFile(file)
	}

	root.AddCommand(newStatsCmd(load), newScoutCmd(load))
	return root
}

func newStatsCmd(load func() (*catalog.Catalog, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Partition counts, orphaned courses and unknown degree codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load()
			if err != nil {
				return err
			}
			writeStats(cmd.OutOrStdout(), c.Stats())
			return nil
		},
	}
}

func writeStats(w io.Writer, s catalog.Stats) {
	fmt.Fprintf(w, "programs:      %d\n", s.Total)
	fmt.Fprintf(w, "undergraduate: %d\n", s.Undergraduate)
	fmt.Fprintf(w, "postgraduate:  %d\n", s.Postgraduate)
	fmt.Fprintf(w, "excluded:      %d\n", s.Excluded)
	if len(s.UnknownCodes) > 0 {
		fmt.Fprintf(w, "unknown codes: %s\n", strings.Join(s.UnknownCodes, ", "))
	}
	if len(s.Orphans) > 0 {
		fmt.Fprintf(w, "orphans (%d):\n", len(s.Orphans))
		for _, name := range s.Orphans {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
}

func newScoutCmd(load func() (*catalog.Catalog, error)) *cobra.Command {
	var (
		traits   []string
		keywords []string
		degree   string
		subject  string
		track    string
		top      int
	)

	cmd := &cobra.Command{
		Use:   "scout",
		Short: "Rank programs against a hand-written trait profile",
		Example: "  catalogcheck scout --trait 'Logical Reasoning=0.9' --trait Physics=0.6 --keyword robotics --track 12\n" +
			"  catalogcheck scout --trait Leadership=1 --degree business --track UG --top 5",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := parseTraits(traits)
			if err != nil {
				return err
			}

			c, err := load()
			if err != nil {
				return err
			}
			programs := c.Eligible()
			if track != "" {
				t, ok := model.ParseTrack(track)
				if !ok {
					return fmt.Errorf("invalid track %q", track)
				}
				programs = c.Programs(t)
			}

			ranked := engine.Scout(profile, keywords, programs, engine.Preferences{Degree: degree, Subject: subject})
			writeCandidates(cmd.OutOrStdout(), engine.TopCandidates(ranked, top))
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&traits, "trait", "t", nil, "trait weight as Name=value, repeatable")
	cmd.Flags().StringArrayVarP(&keywords, "keyword", "k", nil, "interest keyword, repeatable")
	cmd.Flags().StringVar(&degree, "degree", "", "degree preference")
	cmd.Flags().StringVar(&subject, "subject", "", "subject preference")
	cmd.Flags().StringVar(&track, "track", "", "12 or UG; empty ranks the whole catalog")
	cmd.Flags().IntVar(&top, "top", 10, "number of programs to print")
	return cmd
}

func parseTraits(raw []string) (engine.Vector, error) {
	profile := make(engine.Vector, len(raw))
	for _, r := range raw {
		name, value, ok := strings.Cut(r, "=")
		if !ok {
			return nil, fmt.Errorf("trait %q: want Name=value", r)
		}
		name = strings.TrimSpace(name)
		if !catalog.IsTrait(name) {
			return nil, fmt.Errorf("unknown trait %q", name)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || v < 0 || v > 1 {
			return nil, fmt.Errorf("trait %q: weight must be within [0,1]", name)
		}
		profile[name] = v
	}
	return profile, nil
}

func writeCandidates(w io.Writer, candidates []engine.ScoredCandidate) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSCORE\tCODE\tPROGRAM")
	for i, c := range candidates {
		fmt.Fprintf(tw, "%d\t%.3f\t%s\t%s\n", i+1, c.Score, c.Program.Category, c.Program.Name)
	}
	tw.Flush()
}
