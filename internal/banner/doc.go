// Package banner supplies the lines shown as already typed when the
// animation starts.
//
// By default that is a short boot sequence. A banner file replaces it; only
// its last MaxLines lines are kept, read in one pass with a ring buffer so
// large files never load whole.
//
// Read returns nil, nil for a missing file. Load never fails: any problem
// falls back to Default.
package banner
