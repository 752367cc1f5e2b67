package main

import (
	"strings"

	"github.com/spf13/cobra"

	"strguard/internal/textutil"
)

// pairFlags binds --a and --b. An unset flag is an absent value.
type pairFlags struct {
	a string
	b string
}

func (p *pairFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.a, "a", "", "First value (omit for absent, pass \"\" for empty)")
	cmd.Flags().StringVar(&p.b, "b", "", "Second value (omit for absent, pass \"\" for empty)")
}

func (p *pairFlags) texts(cmd *cobra.Command) (textutil.Text, textutil.Text) {
	a, b := textutil.Absent(), textutil.Absent()
	if cmd.Flags().Changed("a") {
		a = textutil.Some(p.a)
	}
	if cmd.Flags().Changed("b") {
		b = textutil.Some(p.b)
	}
	return a, b
}

const (
	opSimilarity = "similarity"
	opDistance   = "distance"
	opLength     = "length"
)

func newGuardCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newSingleGuardCommand(ctx, opSimilarity, "Report the normalized similarity for a degenerate pair"),
		newSingleGuardCommand(ctx, opDistance, "Report the normalized distance for a degenerate pair"),
		newLengthCommand(ctx),
		newCheckCommand(ctx),
	}
}

func newSingleGuardCommand(ctx *commandContext, op, short string) *cobra.Command {
	var pair pairFlags
	cmd := &cobra.Command{
		Use:   op,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := pair.texts(cmd)
			var outcome textutil.Outcome
			if op == opSimilarity {
				outcome = textutil.NormalizedSimilarity(a, b)
			} else {
				outcome = textutil.NormalizedDistance(a, b)
			}
			return ctx.emit(cmd, newPairReport(a, b, guardResult{Operation: op, Outcome: outcome}))
		},
	}
	pair.register(cmd)
	return cmd
}

func newLengthCommand(ctx *commandContext) *cobra.Command {
	var pair pairFlags
	var unitFlag string
	cmd := &cobra.Command{
		Use:   opLength,
		Short: "Report the raw length distance for a degenerate pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := ctx.lengthUnit(unitFlag)
			if err != nil {
				return err
			}
			a, b := pair.texts(cmd)
			outcome := textutil.LengthDistanceIn(a, b, unit)
			return ctx.emit(cmd, newPairReport(a, b, guardResult{Operation: opLength, Unit: unit.String(), Outcome: outcome}))
		},
	}
	pair.register(cmd)
	cmd.Flags().StringVar(&unitFlag, "unit", "", "Length unit: utf16, runes, or bytes (defaults to [length] unit)")
	return cmd
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var pair pairFlags
	var unitFlag string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run every guard against the pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := ctx.lengthUnit(unitFlag)
			if err != nil {
				return err
			}
			a, b := pair.texts(cmd)
			return ctx.emit(cmd, newPairReport(a, b,
				guardResult{Operation: opSimilarity, Outcome: textutil.NormalizedSimilarity(a, b)},
				guardResult{Operation: opDistance, Outcome: textutil.NormalizedDistance(a, b)},
				guardResult{Operation: opLength, Unit: unit.String(), Outcome: textutil.LengthDistanceIn(a, b, unit)},
			))
		},
	}
	pair.register(cmd)
	cmd.Flags().StringVar(&unitFlag, "unit", "", "Length unit: utf16, runes, or bytes (defaults to [length] unit)")
	return cmd
}

func (c *commandContext) lengthUnit(flag string) (textutil.LengthUnit, error) {
	if strings.TrimSpace(flag) != "" {
		return textutil.ParseLengthUnit(flag)
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return textutil.UnitRunes, err
	}
	return cfg.LengthUnit(), nil
}
