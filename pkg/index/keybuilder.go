package index

import "secidx/pkg/tuple"

// BuildKey projects t's key columns (per m.KeyColumns) into a fresh Key,
// the step the surrounding executor performs before calling Insert/Delete
// on a row's own index entry. The returned Key is independent of t — it
// does not alias t's value slice.
func (m *Metadata) BuildKey(t *tuple.Tuple) (Key, error) {
	values, err := t.Project(m.KeyColumns)
	if err != nil {
		return nil, wrapError(CodeInvalidArgument, err, "building key for index %s", m.Name)
	}
	return Key(values), nil
}
