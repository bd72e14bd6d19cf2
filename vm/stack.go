package vm

// Block is a pending block opener.
type Block struct {
	Index  int // Instruction index of the opener.
	LineNo int // Source line of the opener.
}

// Stack of pending block openers.
type Stack struct {
	Data []Block
}

func (s *Stack) Push(block Block) {
	s.Data = append(s.Data, block)
}

func (s *Stack) Pop() (block Block, ok bool) {
	block, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Peek() (block Block, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

// Bottom returns the outermost (earliest) pending opener.
func (s *Stack) Bottom() (block Block, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[0], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
