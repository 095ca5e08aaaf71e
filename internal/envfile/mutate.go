package envfile

// Add sets key to value.
//
// If no pair has key, a new pair is appended. Otherwise only the first pair
// with key is considered: an identical value is a no-op, and an empty value
// never overwrites a non-empty one (the call is Skipped). Later duplicates
// are left untouched.
func (d *Document) Add(key, value string) Status {
	for i, line := range d.lines {
		p, ok := line.(Pair)
		if !ok || p.Key != key {
			continue
		}
		switch {
		case p.Value == value:
			return Status{Kind: Unchanged, Key: key, Value: value}
		case value == "" && p.Value != "":
			return Status{Kind: Skipped, Key: key, Reason: ReasonExists}
		}
		d.lines[i] = Pair{Key: key, Value: value}
		d.modified = true
		return Status{Kind: Updated, Key: key, Value: value}
	}

	d.lines = append(d.lines, Pair{Key: key, Value: value})
	d.modified = true
	return Status{Kind: Added, Key: key, Value: value}
}

// Remove deletes every pair whose key is key. Blank and comment lines are
// kept. The returned Status counts all deleted lines in a single event.
func (d *Document) Remove(key string) Status {
	kept := d.lines[:0]
	removed := 0
	for _, line := range d.lines {
		if p, ok := line.(Pair); ok && p.Key == key {
			removed++
			continue
		}
		kept = append(kept, line)
	}
	clear(d.lines[len(kept):])
	d.lines = kept

	if removed == 0 {
		return Status{Kind: Unchanged, Key: key}
	}
	d.modified = true
	return Status{Kind: Removed, Key: key, Count: removed}
}

// ReorderBasedOn replaces the lines of d with the shape of template.
//
// Blank and comment lines are copied from template. Each template pair is
// emitted with the value d currently holds for that key, or "" if d has no
// such key; those keys are returned in template order. Pairs, comments and
// blanks that exist only in d are dropped. d is always marked modified.
func (d *Document) ReorderBasedOn(template *Document) (added []string) {
	lines := make([]Line, 0, len(template.lines))
	for _, line := range template.lines {
		switch l := line.(type) {
		case Blank:
			lines = append(lines, l)
		case Comment:
			lines = append(lines, l)
		case Pair:
			value, ok := d.Lookup(l.Key)
			if !ok {
				added = append(added, l.Key)
			}
			lines = append(lines, Pair{Key: l.Key, Value: value})
		default:
			panic(unknownLine(line))
		}
	}
	d.lines = lines
	d.modified = true
	return added
}
