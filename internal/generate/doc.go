// Package generate provides the lotto generate command.
//
// CommandBuilder wires configuration, logging, and an injectable random
// source into a lottery.Generator and renders the result through the
// console NumberRenderer.
package generate
