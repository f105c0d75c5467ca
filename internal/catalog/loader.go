package catalog

// Load parses and validates a batch of course lines and inserts every record
// into a new table. Nothing is built when the batch is rejected.
func Load(lines []string, opts ...Option) (*Table, error) {
	records, err := validateBatch(lines)
	if err != nil {
		return nil, err
	}

	t := NewTable(opts...)
	for _, rec := range records {
		t.Insert(rec)
	}
	return t, nil
}
