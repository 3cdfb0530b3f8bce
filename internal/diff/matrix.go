package diff

// Row is one key of the matrix. Values is aligned with Matrix.Files; a nil
// element means the key is missing from that file.
type Row struct {
	Key    string
	Values []*Entry
}

// Matrix is the key by file grid of a comparison.
type Matrix struct {
	Files []string
	Rows  []Row
}

// Summary holds the counts shown in the summary view.
type Summary struct {
	Files      int `json:"files"`
	Keys       int `json:"keys"`
	Incomplete int `json:"incomplete"`
	Diverging  int `json:"diverging"`
}

// BuildMatrix lays out vm with files sorted by name and rows in key order.
func BuildMatrix(vm *VariableMap) Matrix {
	files := vm.Files()
	rows := make([]Row, 0, vm.Len())

	for _, key := range vm.keys {
		values := make([]*Entry, len(files))
		for i, f := range files {
			if e, ok := vm.entries[key][f]; ok {
				values[i] = &e
			}
		}
		rows = append(rows, Row{Key: key, Values: values})
	}

	return Matrix{Files: files, Rows: rows}
}

// Incomplete reports whether the key is missing from at least one file.
func (r Row) Incomplete() bool {
	for _, v := range r.Values {
		if v == nil {
			return true
		}
	}
	return false
}

// Diverging reports whether the files defining the key disagree on its
// value. The quoting of a value does not count as a difference.
func (r Row) Diverging() bool {
	first := ""
	seen := false
	for _, v := range r.Values {
		if v == nil {
			continue
		}
		if !seen {
			first, seen = v.Value, true
			continue
		}
		if v.Value != first {
			return true
		}
	}
	return false
}

// MissingCount counts the incomplete rows.
func MissingCount(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.Incomplete() {
			n++
		}
	}
	return n
}

// DivergingCount counts the rows whose present values differ.
func DivergingCount(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.Diverging() {
			n++
		}
	}
	return n
}

// IncompleteDetails maps every incomplete key to the files it is missing from.
func IncompleteDetails(rows []Row, files []string) map[string][]string {
	out := make(map[string][]string)
	for _, r := range rows {
		var missing []string
		for i, v := range r.Values {
			if v == nil {
				missing = append(missing, files[i])
			}
		}
		if len(missing) > 0 {
			out[r.Key] = missing
		}
	}
	return out
}

// DivergingDetails maps every diverging key to its value in each file that
// defines it.
func DivergingDetails(rows []Row, files []string) map[string]map[string]string {
	out := make(map[string]map[string]string)
	for _, r := range rows {
		if !r.Diverging() {
			continue
		}
		present := make(map[string]string)
		for i, v := range r.Values {
			if v != nil {
				present[files[i]] = v.Value
			}
		}
		out[r.Key] = present
	}
	return out
}

func (m Matrix) Summary() Summary {
	return Summary{
		Files:      len(m.Files),
		Keys:       len(m.Rows),
		Incomplete: MissingCount(m.Rows),
		Diverging:  DivergingCount(m.Rows),
	}
}
