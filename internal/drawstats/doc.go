// Package drawstats provides the lotto stats command, which runs repeated
// generations and reports how the drawn numbers are distributed.
package drawstats
