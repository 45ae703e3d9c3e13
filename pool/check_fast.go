//go:build parfast

package pool

const debugChecks = false
