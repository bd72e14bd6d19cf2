// Package io holds the tape of the classic machine: a numeric input stream
// read one integer at a time, and the output sink printed numbers go to.
package io
