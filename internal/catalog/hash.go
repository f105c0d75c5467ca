package catalog

// hashMultiplier is the polynomial base of the identifier hash.
const hashMultiplier = 31

// HashIdentifier maps an identifier onto a bucket index in [0, capacity).
//
// The accumulator is a uint32 that wraps modulo 2^32 on overflow, so long
// identifiers never produce a negative index. Bytes are hashed, which equals
// the character code for ASCII identifiers. The empty identifier maps to
// bucket 0.
func HashIdentifier(id string, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(hashSum(id) % uint32(capacity))
}

func hashSum(id string) uint32 {
	var h uint32
	for i := 0; i < len(id); i++ {
		h = h*hashMultiplier + uint32(id[i])
	}
	return h
}
