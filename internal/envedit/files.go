package envedit

import (
	"EnvEdit/internal/console"
	"EnvEdit/internal/envfile"
	"EnvEdit/internal/logger"
	"EnvEdit/internal/paths"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
)

// Open loads file. With SkipMalformed set, malformed lines are dropped and
// reported as warnings.
func Open(ctx context.Context, file string, opts Options) (*envfile.Document, error) {
	var parseOpts []envfile.ParseOption
	if opts.SkipMalformed {
		parseOpts = append(parseOpts, envfile.SkipMalformed(func(e *envfile.ParseError) {
			logger.Warn(ctx, "{{_File_}}%s{{|-|}}: Skipping line %d, no '=' found: %s", file, e.Line, console.Escape(strconv.Quote(e.Text)))
		}))
	}
	doc, err := envfile.Load(file, parseOpts...)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "Loaded '{{_File_}}%s{{|-|}}' (%d lines).", file, doc.Len())
	return doc, nil
}

// OpenOrNew loads file, or returns an empty Document bound to file if it does
// not exist yet.
func OpenOrNew(ctx context.Context, file string, opts Options) (*envfile.Document, error) {
	doc, err := Open(ctx, file, opts)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info(ctx, "File '{{_File_}}%s{{|-|}}' does not exist, it will be created.", file)
		return envfile.New(file), nil
	}
	return doc, err
}

// commit writes doc to its path if it was modified. In dry-run mode the
// pending change is printed as a diff instead.
func commit(ctx context.Context, doc *envfile.Document, opts Options) error {
	if !doc.Modified() {
		logger.Debug(ctx, "No changes to '{{_File_}}%s{{|-|}}'.", doc.Path)
		return nil
	}

	before, err := readIfExists(doc.Path)
	if err != nil {
		return &envfile.IOError{Op: "read", Path: doc.Path, Err: err}
	}

	if opts.DryRun {
		logger.Notice(ctx, "Dry run, not writing '{{_File_}}%s{{|-|}}'.", doc.Path)
		if diff := Diff(doc.Path, before, doc.Render()); diff != "" {
			fmt.Fprint(opts.out(), console.ToANSI(diff))
		}
		return nil
	}

	if opts.Backup && before != "" {
		bak := paths.BackupPath(doc.Path)
		if err := CopyFile(doc.Path, bak); err != nil {
			logger.Warn(ctx, "Failed to back up '{{_File_}}%s{{|-|}}': %v", doc.Path, err)
		} else {
			logger.Info(ctx, "Backed up '{{_File_}}%s{{|-|}}' to '{{_File_}}%s{{|-|}}'.", doc.Path, bak)
		}
	}

	if err := doc.SaveIfModified(); err != nil {
		return err
	}
	logger.Info(ctx, "Saved '{{_File_}}%s{{|-|}}'.", doc.Path)
	return nil
}

func readIfExists(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	return string(data), err
}

// CopyFile copies src to dst, replacing dst.
func CopyFile(src, dst string) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, input, 0644)
}
