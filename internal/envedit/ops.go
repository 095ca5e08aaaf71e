package envedit

import (
	"EnvEdit/internal/console"
	"EnvEdit/internal/envfile"
	"EnvEdit/internal/logger"
	"context"
	"fmt"
	"strings"
)

// Value is the result of looking up one key.
type Value struct {
	Key   string
	Value string
	Found bool
}

// Get looks up each key in file. Results are in the order of keys.
func Get(ctx context.Context, file string, keys []string, opts Options) ([]Value, error) {
	doc, err := Open(ctx, file, opts)
	if err != nil {
		return nil, err
	}
	values := make([]Value, 0, len(keys))
	for _, key := range keys {
		v, ok := doc.Lookup(key)
		values = append(values, Value{Key: key, Value: v, Found: ok})
	}
	return values, nil
}

// Has reports for each key whether file has it. With requireValue set, the
// key must also hold a non-empty value.
func Has(ctx context.Context, file string, keys []string, requireValue bool, opts Options) ([]bool, error) {
	doc, err := Open(ctx, file, opts)
	if err != nil {
		return nil, err
	}
	found := make([]bool, len(keys))
	for i, key := range keys {
		if requireValue {
			found[i] = doc.HasValue(key)
		} else {
			found[i] = doc.HasKey(key)
		}
	}
	return found, nil
}

// List returns all pairs of file in document order, duplicates included.
func List(ctx context.Context, file string, opts Options) ([]envfile.Pair, error) {
	doc, err := Open(ctx, file, opts)
	if err != nil {
		return nil, err
	}
	var pairs []envfile.Pair
	for k, v := range doc.Pairs() {
		pairs = append(pairs, envfile.Pair{Key: k, Value: v})
	}
	return pairs, nil
}

// ParseAssignment splits a KEY=VALUE command line argument.
func ParseAssignment(arg string) (envfile.Pair, error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok {
		return envfile.Pair{}, fmt.Errorf("argument %q missing '='", arg)
	}
	if key == "" {
		return envfile.Pair{}, fmt.Errorf("argument %q has an empty variable name", arg)
	}
	return envfile.Pair{Key: key, Value: value}, nil
}

// Set adds or updates each pair in file, creating the file if needed, and
// returns one Status per pair.
func Set(ctx context.Context, file string, pairs []envfile.Pair, opts Options) ([]envfile.Status, error) {
	doc, err := OpenOrNew(ctx, file, opts)
	if err != nil {
		return nil, err
	}

	statuses := make([]envfile.Status, 0, len(pairs))
	for _, p := range pairs {
		st := doc.Add(p.Key, p.Value)
		logStatus(ctx, file, st)
		statuses = append(statuses, st)
	}
	return statuses, commit(ctx, doc, opts)
}

// Unset removes every occurrence of each key from file and returns one
// Status per key.
func Unset(ctx context.Context, file string, keys []string, opts Options) ([]envfile.Status, error) {
	doc, err := Open(ctx, file, opts)
	if err != nil {
		return nil, err
	}

	statuses := make([]envfile.Status, 0, len(keys))
	for _, key := range keys {
		st := doc.Remove(key)
		logStatus(ctx, file, st)
		statuses = append(statuses, st)
	}
	return statuses, commit(ctx, doc, opts)
}

// Sync reshapes file after template: the template's order, comments and
// blank lines are kept, values come from file, and keys file lacks are added
// with an empty value. The added keys are returned.
func Sync(ctx context.Context, file, template string, opts Options) ([]string, error) {
	tmpl, err := Open(ctx, template, opts)
	if err != nil {
		return nil, err
	}
	doc, err := OpenOrNew(ctx, file, opts)
	if err != nil {
		return nil, err
	}

	for k := range doc.Pairs() {
		if !tmpl.HasKey(k) {
			logger.Warn(ctx, "{{_File_}}%s{{|-|}}: Dropping {{_Var_}}%s{{|-|}}, not in '{{_File_}}%s{{|-|}}'", file, console.Escape(k), template)
		}
	}

	added := doc.ReorderBasedOn(tmpl)
	for _, k := range added {
		logger.Notice(ctx, "{{_File_}}%s{{|-|}}: {{_Added_}}Added{{|-|}} {{_Var_}}%s{{|-|}}=", file, console.Escape(k))
	}
	return added, commit(ctx, doc, opts)
}

// Clone copies src to dest. dest is always written, even when it already
// has the same content.
func Clone(ctx context.Context, src, dest string, opts Options) error {
	doc, err := Open(ctx, src, opts)
	if err != nil {
		return err
	}
	clone := doc.CloneToPath(dest)
	logger.Notice(ctx, "Cloning '{{_File_}}%s{{|-|}}' to '{{_File_}}%s{{|-|}}'.", src, dest)
	return commit(ctx, clone, opts)
}

// logStatus logs st. Keys and values are file content, so they are escaped
// before the logger expands tags.
func logStatus(ctx context.Context, file string, st envfile.Status) {
	shown := st
	shown.Key, shown.Value = console.Escape(st.Key), console.Escape(st.Value)
	msg := shown.Message("{{_File_}}" + file + "{{|-|}}")
	switch st.Kind {
	case envfile.Unchanged:
		logger.Debug(ctx, "{{_File_}}%s{{|-|}}: {{_Var_}}%s{{|-|}} unchanged", file, shown.Key)
	case envfile.Skipped:
		logger.Warn(ctx, "%s", msg)
	case envfile.Removed:
		logger.Notice(ctx, "%s (%d lines)", msg, st.Count)
	default:
		logger.Notice(ctx, "%s", msg)
	}
}
