// Package build implements "build" command: composes selectors from recipe
// documents and writes them out.
package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"selkit/config"
	"selkit/jsonutil"
	"selkit/recipe"
	"selkit/state"
)

// Run is the action of the build command.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no recipe source has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	opts := env.Cfg.Output
	if cmd.IsSet("format") {
		if opts.Format, err = config.ParseOutputFmt(cmd.String("format")); err != nil {
			return err
		}
	}
	if cmd.IsSet("sort") {
		opts.Sort = cmd.Bool("sort")
	}
	if cmd.IsSet("nolint") {
		opts.Lint = !cmd.Bool("nolint")
	}

	var data []byte
	if src == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(src)
	}
	if err != nil {
		return fmt.Errorf("unable to read recipes from '%s': %w", src, err)
	}
	env.Rpt.StoreData("recipes.yaml", data)

	log.Debug("Processing starting", zap.String("source", src), zap.Stringer("format", opts.Format))
	defer func(start time.Time) {
		log.Debug("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(data, opts, env.Out, log)
}

// process builds all recipes and writes out the ones which succeeded even when
// some failed, the returned error lists every failure.
func process(data []byte, opts config.OutputConfig, out io.Writer, log *zap.Logger) error {
	book, err := recipe.LoadBytes(data)
	if err != nil {
		return err
	}

	results, buildErr := book.Build(log, opts.Lint)
	if opts.Sort {
		recipe.SortResults(results)
	}
	if err := render(out, results, opts.Format); err != nil {
		return fmt.Errorf("unable to write results: %w", err)
	}
	if buildErr != nil {
		return fmt.Errorf("unable to compose some selectors: %w", buildErr)
	}
	return nil
}

func render(w io.Writer, results []recipe.Result, format config.OutputFmt) error {
	if results == nil {
		results = []recipe.Result{}
	}
	switch format {
	case config.OutputFmtJSON:
		text, err := jsonutil.EncodeIndent(results)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, text)
		return err
	case config.OutputFmtYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Name, r.Selector); err != nil {
				return err
			}
		}
		return nil
	}
}
