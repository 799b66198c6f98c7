package models

import gomath "math"

const (
	subtractiveSeed = 161803398
	subtractiveMax  = gomath.MaxInt32
)

// subtractiveRand is Knuth's subtractive generator with the seeding used
// by the .NET runtime. Ghast tentacle lengths were authored against that
// sequence, so math/rand cannot stand in for it.
type subtractiveRand struct {
	seeds  [56]int32
	inext  int
	inextp int
}

func newSubtractiveRand(seed int32) *subtractiveRand {
	r := &subtractiveRand{inextp: 21}

	abs := seed
	if abs == gomath.MinInt32 {
		abs = gomath.MaxInt32
	} else if abs < 0 {
		abs = -abs
	}

	mj := int32(subtractiveSeed) - abs
	r.seeds[55] = mj
	mk := int32(1)
	for i := 1; i < 55; i++ {
		ii := (21 * i) % 55
		r.seeds[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += subtractiveMax
		}
		mj = r.seeds[ii]
	}
	for k := 1; k < 5; k++ {
		for i := 1; i < 56; i++ {
			r.seeds[i] -= r.seeds[1+(i+30)%55]
			if r.seeds[i] < 0 {
				r.seeds[i] += subtractiveMax
			}
		}
	}
	return r
}

func (r *subtractiveRand) sample() int32 {
	r.inext++
	if r.inext >= 56 {
		r.inext = 1
	}
	r.inextp++
	if r.inextp >= 56 {
		r.inextp = 1
	}

	ret := r.seeds[r.inext] - r.seeds[r.inextp]
	if ret == subtractiveMax {
		ret--
	}
	if ret < 0 {
		ret += subtractiveMax
	}
	r.seeds[r.inext] = ret
	return ret
}

// Intn returns a value in [0, n).
func (r *subtractiveRand) Intn(n int) int {
	return int(float64(r.sample()) * (1.0 / subtractiveMax) * float64(n))
}
