// Package symbols defines the predefined symbol-set catalog and the active
// character pool that random strings are drawn from.
package symbols
