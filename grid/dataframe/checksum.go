package dataframe

import "github.com/mitchellh/hashstructure/v2"

// Checksum returns a content hash over the present entries. Two stores
// with the same entries at the same points hash identically regardless of
// write order, so a collaborator can compare checksums across a resync to
// decide whether anything actually changed instead of diffing cell by
// cell.
//
// V must be hashable by reflection (no functions or channels inside).
func (d *DataFrame[V]) Checksum() (uint64, error) {
	return hashstructure.Hash(d.cells, hashstructure.FormatV2, nil)
}
