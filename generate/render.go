package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssel/recipe"
	"cssel/state"
	"cssel/stylesheet"
)

var ErrVerification = errors.New("rendered stylesheet does not match recipe")

// Render loads recipes from SOURCE and writes one stylesheet per recipe into
// DESTINATION directory or to standard output.
func Render(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no recipe source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
		if err := os.MkdirAll(dst, 0755); err != nil {
			return fmt.Errorf("unable to create destination directory: %w", err)
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	// stylesheets on stdout should not be interleaved with progress messages
	progress := log.Info
	if len(dst) == 0 {
		progress = log.Debug
	}
	progress("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Bool("strict", env.Strict()))
	defer func(start time.Time) {
		progress("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	env.Rpt.Store("source", src)

	recipes, err := recipe.Load(src)
	if err != nil {
		return err
	}
	if len(recipes) == 0 {
		log.Warn("No recipes found", zap.String("source", src))
		return nil
	}
	return process(ctx, recipes, dst, env, log)
}

// process renders recipes one by one. Failed recipe does not stop processing,
// all failures are returned together.
func process(ctx context.Context, recipes []*recipe.Recipe, dst string, env *state.LocalEnv, log *zap.Logger) (err error) {
	var verifier *stylesheet.Parser
	if env.Cfg != nil && env.Cfg.Selector.Verify {
		verifier = stylesheet.NewParser(log)
	}

	used := make(map[string]bool, len(recipes))
	for _, r := range recipes {
		if e := ctx.Err(); e != nil {
			return multierr.Append(err, e)
		}

		data, e := renderRecipe(r, env.Strict(), verifier)
		if e != nil {
			log.Error("Unable to render recipe", zap.String("recipe", r.Source), zap.Error(e))
			err = multierr.Append(err, fmt.Errorf("%s: %w", r.Source, e))
			continue
		}
		name := uniqueName(used, r.FileName())
		if name != r.FileName() {
			log.Warn("Stylesheet name already taken, renaming", zap.String("recipe", r.Source), zap.String("file", name))
		}
		env.Rpt.StoreData(filepath.ToSlash(filepath.Join("out", name)), data)

		if e := output(env.Out, dst, name, data); e != nil {
			err = multierr.Append(err, e)
			continue
		}
		log.Debug("Recipe rendered", zap.String("recipe", r.Source), zap.String("file", name), zap.Int("rules", len(r.Rules)))
	}
	return err
}

func renderRecipe(r *recipe.Recipe, strict bool, verifier *stylesheet.Parser) ([]byte, error) {
	sheet, err := r.Stylesheet(strict)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := sheet.WriteTo(&buf); err != nil {
		return nil, err
	}

	if verifier != nil {
		if err := verify(verifier, sheet, buf.Bytes(), r.FileName()); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// verify parses rendered text back and checks that every rule selector is
// present with the same properties and equal values.
func verify(p *stylesheet.Parser, sheet *stylesheet.Stylesheet, data []byte, name string) (err error) {
	parsed := p.Parse(data, name)
	for _, rule := range sheet.Rules {
		found := parsed.RulesBySelector(rule.Selector)
		if len(found) == 0 {
			err = multierr.Append(err, fmt.Errorf("%w: selector %q not found", ErrVerification, rule.Selector))
			continue
		}
		got := found[0]
		if len(got.Properties) != len(rule.Properties) {
			err = multierr.Append(err, fmt.Errorf("%w: selector %q has %d properties, expected %d",
				ErrVerification, rule.Selector, len(got.Properties), len(rule.Properties)))
		}
		for _, prop := range slices.Sorted(maps.Keys(rule.Properties)) {
			want := rule.Properties[prop]
			v, ok := got.GetProperty(prop)
			switch {
			case !ok:
				err = multierr.Append(err, fmt.Errorf("%w: selector %q lost property %q", ErrVerification, rule.Selector, prop))
			case !v.Equal(want):
				err = multierr.Append(err, fmt.Errorf("%w: selector %q property %q is %q, expected %q",
					ErrVerification, rule.Selector, prop, v.Raw, want.Raw))
			}
		}
	}
	return err
}

// uniqueName returns name or, when it was already produced by an earlier
// recipe, name with numeric suffix before extension.
func uniqueName(used map[string]bool, name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	candidate := name
	for i := 2; used[candidate]; i++ {
		candidate = fmt.Sprintf("%s-%d%s", base, i, ext)
	}
	used[candidate] = true
	return candidate
}

func output(stdout io.Writer, dst, name string, data []byte) error {
	if len(dst) == 0 {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("unable to write stylesheet: %w", err)
		}
		return nil
	}
	fname := filepath.Join(dst, name)
	if err := os.WriteFile(fname, data, 0644); err != nil {
		return fmt.Errorf("unable to write stylesheet '%s': %w", fname, err)
	}
	return nil
}
