// Package sample selects uniform random subsets of catalog records
// without replacement.
package sample
