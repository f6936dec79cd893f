package cli

import (
	"github.com/calebcase/oops"
	"github.com/spf13/cobra"

	"github.com/calebcase/lexorank"
)

func (a *app) bucket() (b lexorank.Bucket, err error) {
	return lexorank.ParseBucket(a.v.GetString(KeyBucket))
}

func (a *app) minCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "min",
		Short: "Print the lowest rank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.bucket()
			if err != nil {
				return err
			}

			r := lexorank.Min()
			if b != r.Bucket() {
				r = lexorank.New(b, r.Decimal())
			}

			return a.write(cmd.OutOrStdout(), r)
		},
	}
}

func (a *app) maxCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "max",
		Short: "Print the highest rank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.bucket()
			if err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), lexorank.Max(b))
		},
	}
}

func (a *app) middleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "middle",
		Short: "Print the rank half way between min and max",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.bucket()
			if err != nil {
				return err
			}

			r := lexorank.Middle()
			if b != r.Bucket() {
				r = lexorank.New(b, r.Decimal())
			}

			return a.write(cmd.OutOrStdout(), r)
		},
	}
}

func (a *app) initialCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "initial",
		Short: "Print the first rank for an empty bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.bucket()
			if err != nil {
				return err
			}

			return a.write(cmd.OutOrStdout(), lexorank.Initial(b))
		},
	}
}

func (a *app) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse RANK...",
		Short: "Parse ranks and print them in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranks := make([]lexorank.Rank, 0, len(args))
			for _, arg := range args {
				r, err := lexorank.Parse(arg)
				if err != nil {
					return err
				}

				ranks = append(ranks, r)
			}

			return a.write(cmd.OutOrStdout(), ranks...)
		},
	}
}

// step prints count ranks produced by repeatedly applying fn to the rank
// given as the only argument.
func (a *app) step(name string, fn func(lexorank.Rank) lexorank.Rank) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return oops.New("count must be at least 1")
			}

			r, err := lexorank.Parse(args[0])
			if err != nil {
				return err
			}

			ranks := make([]lexorank.Rank, 0, count)
			for k := 0; k < count; k++ {
				next := fn(r)
				a.log.Debug().
					Str("op", name).
					Stringer("from", r).
					Stringer("to", next).
					Msg("generated rank")

				r = next
				ranks = append(ranks, r)
			}

			return a.write(cmd.OutOrStdout(), ranks...)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of ranks to generate")

	return cmd
}

func (a *app) nextCommand() *cobra.Command {
	cmd := a.step("next", lexorank.Rank.GenNext)
	cmd.Use = "next RANK"
	cmd.Short = "Print ranks after the given rank"

	return cmd
}

func (a *app) prevCommand() *cobra.Command {
	cmd := a.step("prev", lexorank.Rank.GenPrev)
	cmd.Use = "prev RANK"
	cmd.Short = "Print ranks before the given rank"

	return cmd
}

func (a *app) betweenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "between RANK RANK",
		Short: "Print the shortest rank between two ranks",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lexorank.Parse(args[0])
			if err != nil {
				return err
			}

			r, err := lexorank.Parse(args[1])
			if err != nil {
				return err
			}

			mid, err := l.Between(r)
			if err != nil {
				return err
			}

			a.log.Debug().
				Str("op", "between").
				Stringer("left", l).
				Stringer("right", r).
				Stringer("mid", mid).
				Msg("generated rank")

			return a.write(cmd.OutOrStdout(), mid)
		},
	}
}

func (a *app) moveCommand() *cobra.Command {
	var next, prev bool

	cmd := &cobra.Command{
		Use:   "move RANK",
		Short: "Print the rank with the same value in the next or previous bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if next == prev {
				return oops.New("exactly one of --next or --prev is required")
			}

			r, err := lexorank.Parse(args[0])
			if err != nil {
				return err
			}

			moved := r.InPrevBucket()
			if next {
				moved = r.InNextBucket()
			}

			a.log.Debug().
				Str("op", "move").
				Stringer("from", r).
				Stringer("to", moved).
				Msg("moved rank")

			return a.write(cmd.OutOrStdout(), moved)
		},
	}

	cmd.Flags().BoolVar(&next, "next", false, "move to the next bucket")
	cmd.Flags().BoolVar(&prev, "prev", false, "move to the previous bucket")

	return cmd
}

func (a *app) sortCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [RANK...]",
		Short: "Print ranks in ascending order",
		Long: `Print ranks in ascending order. Ranks are read one per line from standard
input when none are given as arguments.`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var ranks []lexorank.Rank

			if len(args) == 0 {
				d := lexorank.NewDecoder(cmd.InOrStdin())

				ranks, err = d.DecodeAll()
				if err != nil {
					a.log.Error().Int("line", d.Line()).Err(err).Msg("invalid rank")

					return err
				}
			} else {
				for _, arg := range args {
					r, err := lexorank.Parse(arg)
					if err != nil {
						return err
					}

					ranks = append(ranks, r)
				}
			}

			lexorank.Sort(ranks)

			return a.write(cmd.OutOrStdout(), ranks...)
		},
	}
}
