// Package gamma implements symbols whose letters are Grassmannian minors.
//
// A Gamma is a set of column indices of a d×n matrix, i.e. the d×d minor
// made of those columns (a Plücker coordinate). It generalizes delta.Delta:
// Delta(a, b) is the 2×2 minor Gamma{a, b}.
//
// Letters are stored as their index bitmask, so the natural order on letters
// is the numeric order of bitmasks, and lyndon.ToBasis applies unchanged.
package gamma
