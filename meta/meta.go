// meta/meta.go
package meta

// SEARCH_DEPTH defines the default fixed search depth in plies.
const SEARCH_DEPTH = 5

// MAX_MOVES caps the number of moves a solver run will commit.
const MAX_MOVES = 100
