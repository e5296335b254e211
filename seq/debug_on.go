//go:build rangeview_debug

package seq

const debugChecks = true
