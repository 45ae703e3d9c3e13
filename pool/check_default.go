//go:build !parfast

package pool

// Checked builds compile in the range, marker, precondition and
// postcondition assertions around every mutation. Production runs that
// have been validated once can build with -tags parfast to elide them.
const debugChecks = true
