// Package ui renders lottery results for the console.
//
// Each drawn number is printed on its own line and styled with the color of
// its category. Results and draw summaries may also be emitted as YAML so
// that scripts can consume them without parsing terminal output.
package ui
