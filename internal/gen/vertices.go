package gen

// ExpandVertexIDs assigns an externally visible ID to each vertex index in
// [0, numVertices). The sequence is strictly increasing and always starts at
// 1 for index 0. Candidate IDs are scanned upward and one is emitted (as
// candidate+1) whenever the candidate has reached factor times the number of
// IDs already emitted, thinning the assignment so a larger factor spreads the
// IDs more sparsely over [1, ceil(factor*(numVertices-1))+1]. With factor 1.0
// the result is the contiguous sequence 1..numVertices.
func ExpandVertexIDs(numVertices uint64, factor float64) []uint64 {
	ids := make([]uint64, 0, numVertices)
	if numVertices == 0 {
		return ids
	}
	ids = append(ids, 1)
	candidate := uint64(1)
	for uint64(len(ids)) < numVertices {
		if float64(candidate) >= factor*float64(len(ids)) {
			ids = append(ids, candidate+1)
		}
		candidate++
	}
	return ids
}
