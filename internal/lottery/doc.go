// Package lottery generates unique lottery numbers and classifies them into
// coloured categories.
//
// It offers DetermineCategory for the range-to-category mapping, Generator
// for drawing a requested count of unique numbers into a Result, and
// Summarize for aggregating many results into draw statistics.
package lottery
