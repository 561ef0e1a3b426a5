// Package shape produces target point sets for particle fields.
//
// Every generator is pure given its random source: one xyz triple per particle
// index, packed into a buffer of length 3*count. A negative count is treated as 0.
package shape
