package tabular

// Schema names a collection and fixes its column order. Column order is part
// of the wire contract: positional updates depend on it, so headers must
// never be reordered once a store holds data.
type Schema struct {
	Name    string
	Headers []string
}

// Column returns the index of a header name, or -1 when absent.
func (s Schema) Column(name string) int {
	for i, h := range s.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Row builds a positional row from a field map. Missing fields become empty
// cells; unknown fields are dropped.
func (s Schema) Row(fields map[string]string) []string {
	row := make([]string, len(s.Headers))
	for i, h := range s.Headers {
		row[i] = fields[h]
	}
	return row
}
