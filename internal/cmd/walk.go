package cmd

import (
	"log/slog"

	"github.com/gobwas/glob"
)

type filterFunc func(filename string) bool

func filter(exclude []string) (filterFunc, error) {
	globs := make([]glob.Glob, 0, len(exclude))

	for _, pattern := range exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}

		globs = append(globs, g)
	}

	return func(filename string) bool {
		for _, g := range globs {
			if g.Match(filename) {
				return false
			}
		}

		return true
	}, nil
}

func selectFiles(args []string, accept filterFunc, logger *slog.Logger) []string {
	files := make([]string, 0, len(args))

	for _, filename := range args {
		if !accept(filename) {
			logger.Debug("excluded", "file", filename)

			continue
		}

		files = append(files, filename)
	}

	return files
}
