package envedit

import (
	"EnvEdit/internal/console"
	"EnvEdit/internal/constants"
	"EnvEdit/internal/envfile"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Export writes pairs to w in the given format (constants.FormatEnv,
// FormatYAML or FormatTable). maxWidth bounds the table width; 0 means
// unbounded.
func Export(w io.Writer, pairs []envfile.Pair, format string, maxWidth int) error {
	switch format {
	case constants.FormatEnv, "":
		for _, p := range pairs {
			if _, err := fmt.Fprintln(w, p.String()); err != nil {
				return err
			}
		}
		return nil
	case constants.FormatYAML:
		return exportYAML(w, pairs)
	case constants.FormatTable:
		data := make([]string, 0, len(pairs)*2)
		for _, p := range pairs {
			data = append(data, console.Escape(p.Key), console.Escape(p.Value))
		}
		console.PrintTable(w, []string{"Variable", "Value"}, data, console.IsTTY(), maxWidth)
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

// exportYAML writes a mapping in document order. Only the first occurrence of
// a duplicated key is written, matching Lookup.
func exportYAML(w io.Writer, pairs []envfile.Pair) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	seen := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		if seen[p.Key] {
			continue
		}
		seen[p.Key] = true
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Value},
		)
	}
	if len(root.Content) == 0 {
		_, err := io.WriteString(w, "{}\n")
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}
