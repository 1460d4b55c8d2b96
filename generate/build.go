// Package generate implements program commands producing selectors and
// stylesheets.
package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssel/selector"
	"cssel/state"
	"cssel/utils/debug"
)

var errMissingOperand = errors.New("combinator has no selector on one of its sides")

// Build assembles single selector from command line arguments and prints it.
func Build(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return errors.New("no selector parts have been specified")
	}

	sel, err := parseArgs(args, env.Strict())
	if err != nil {
		return err
	}
	log.Debug("Selector built", zap.Strings("args", args), zap.Stringer("selector", sel))

	out := sel.String() + "\n"
	if cmd.Bool("tree") {
		out = debug.DumpSelector(sel)
	}
	if _, err := fmt.Fprint(env.Out, out); err != nil {
		return fmt.Errorf("unable to write selector: %w", err)
	}
	return nil
}

// parseArgs folds arguments into selector. Argument of "kind=value" form adds
// part to the current compound, anything else is a combinator which starts
// new compound. In permissive mode unknown combinator text is used verbatim.
func parseArgs(args []string, strict bool) (selector.Selector, error) {
	var (
		sel     selector.Selector
		current = selector.New()
		comb    selector.Combinator
	)

	// join current compound to what has been built so far
	join := func() error {
		if current.IsEmpty() {
			return errMissingOperand
		}
		switch {
		case sel == nil:
			sel = current
		case strict:
			combined, err := selector.CombineStrict(sel, comb, current)
			if err != nil {
				return err
			}
			sel = combined
		default:
			sel = selector.Combine(sel, comb, current)
		}
		current = selector.New()
		return nil
	}

	for i, arg := range args {
		// combinators never contain "="
		if strings.Contains(arg, "=") {
			part, err := selector.ParsePart(arg)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i, err)
			}
			if current, err = current.Apply(part); err != nil {
				return nil, fmt.Errorf("argument %d: %w", i, err)
			}
			continue
		}

		if err := join(); err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, arg, err)
		}
		c, err := selector.ParseCombinator(arg)
		if err != nil {
			if strict {
				return nil, fmt.Errorf("argument %d: %w", i, err)
			}
			c = selector.Combinator(arg)
		}
		comb = c
	}
	if err := join(); err != nil {
		return nil, fmt.Errorf("selector cannot end with combinator: %w", err)
	}
	return sel, nil
}
