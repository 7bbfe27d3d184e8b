package reconcile

import "sort"

// Matcher extracts an identifier from a file name.
// *pattern.Pattern is the standard implementation.
type Matcher interface {
	Identifier(filename string) (int, bool)
}

// Reconcile classifies entries against the expected range.
//
// Entries whose name yields no identifier, or an identifier outside r, are dropped.
// Files above sizeCeiling (when positive) go to the oversize bucket, one record per file;
// all other files are grouped by identifier. Oversize files still count as present.
// The two buckets are independent: an identifier can be both found and oversize, and a
// duplicate group only ever contains files within the ceiling.
//
// Reconcile performs no I/O and returns the same result for the same inputs.
func Reconcile(entries []FileEntry, matcher Matcher, r Range, ignore IgnoreSet, sizeCeiling int64) (*Result, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	groups := make(map[int][]string)
	oversized := make([]Oversize, 0)

	for _, e := range entries {
		id, ok := matcher.Identifier(e.Name)
		if !ok || !r.Contains(id) {
			continue
		}
		if sizeCeiling > 0 && e.SizeBytes > sizeCeiling {
			oversized = append(oversized, Oversize{Identifier: id, SizeBytes: e.SizeBytes, FileName: e.Name})
			continue
		}
		groups[id] = append(groups[id], e.Name)
	}

	ids := make([]int, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	found := make([]int, 0, len(ids))
	duplicates := make([]Duplicate, 0)
	for _, id := range ids {
		if !ignore.Has(id) {
			found = append(found, id)
		}
		if names := groups[id]; len(names) > 1 {
			duplicates = append(duplicates, Duplicate{
				Identifier: id,
				FileNames:  append([]string(nil), names...),
			})
		}
	}

	sort.SliceStable(oversized, func(i, j int) bool {
		return oversized[i].Identifier < oversized[j].Identifier
	})

	present := make(map[int]struct{}, len(found)+len(oversized))
	for _, id := range found {
		present[id] = struct{}{}
	}
	for _, o := range oversized {
		present[o.Identifier] = struct{}{}
	}

	missing := make([]int, 0)
	for id := r.Start; ; id++ {
		_, ok := present[id]
		if !ok && !ignore.Has(id) {
			missing = append(missing, id)
		}
		// checked before incrementing so End == math.MaxInt terminates
		if id == r.End {
			break
		}
	}

	return &Result{
		TotalExpected:      r.Size(),
		FoundCount:         len(found) + len(oversized),
		MissingCount:       len(missing),
		DuplicateCount:     len(duplicates),
		IgnoredCount:       len(ignore),
		MissingIdentifiers: missing,
		FoundIdentifiers:   found,
		Duplicates:         duplicates,
		Oversized:          oversized,
	}, nil
}
