// Package interpret turns natural-language commands into operation
// plans through an external model service.
//
// The Interpreter interface is the only seam the rest of the system
// sees; dispatch and execution never depend on the network. Plan
// decoding is shared so raw JSON plans can also be fed in directly.
package interpret
