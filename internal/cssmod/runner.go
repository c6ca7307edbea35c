package cssmod

import (
	"context"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Run converts every manifest entry in order, one file at a time.
//
// Missing files and files without a CSS import are reported and skipped.
// Any other failure aborts the run; files converted before it stay converted.
// rep may be nil.
func Run(ctx context.Context, config Config, rep *Reporter) (*RunResult, error) {
	logger := zerolog.Ctx(ctx)

	targets, err := ResolveTargets(config.Root, config.Files, config.RespectGitignore)
	if err != nil {
		return nil, errors.Errorf("resolve manifest: %w", err)
	}
	logger.Debug().Str("root", config.Root).Int("targets", len(targets)).Msg("resolved manifest")

	result := &RunResult{}
	for _, target := range targets {
		res, err := processTarget(target, config)
		if err != nil {
			logger.Error().Err(err).Str("file", target.Path).Msg("conversion aborted")
			return result, errors.Errorf("%s: %w", target.Entry, err)
		}

		logger.Debug().
			Str("file", target.Path).
			Bool("glob", target.Glob).
			Stringer("status", res.Status).
			Str("import", res.Import.Path).
			Int("rewrites", res.Rewrite).
			Msg("processed")

		switch res.Status {
		case StatusConverted:
			result.Converted++
		case StatusSkipped:
			result.Skipped++
		case StatusNotFound:
			result.NotFound++
		}
		result.Results = append(result.Results, res)

		if rep != nil {
			rep.FileDone(res)
		}
	}

	if rep != nil {
		rep.PrintSummary(*result)
	}
	return result, nil
}

func processTarget(target Target, config Config) (FileResult, error) {
	res := FileResult{Target: target}

	if _, err := os.Stat(target.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			res.Status = StatusNotFound
			return res, nil
		}
		return res, errors.Errorf("stat: %w", err)
	}

	conv, err := ConvertFile(target.Path)
	if err != nil {
		return res, err
	}

	if !conv.Found {
		res.Status = StatusSkipped
		return res, nil
	}

	res.Status = StatusConverted
	res.Import = conv.Import
	res.Rewrite = conv.CamelRewrites + conv.BraceRewrites
	if config.ShowDiff {
		res.Diff = LineDiff(conv.Original, conv.Content)
	}
	return res, nil
}
