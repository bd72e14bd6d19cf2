package vm

// Code is a compiled program of any domain. *Program[T] implements it.
type Code interface {
	Len() int
	LineNo(pc int) int
}
