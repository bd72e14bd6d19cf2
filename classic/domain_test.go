package classic

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lovelace/vm"
)

type otherCode struct{}

func (otherCode) Len() int       { return 0 }
func (otherCode) LineNo(int) int { return 0 }

func TestDomain(t *testing.T) {
	assert := assert.New(t)

	dom := &Domain{}
	assert.Equal("classic", dom.Name())

	code, err := dom.Compile(source("⭐🐶", "✖🐶🐶", "😀🐶"))
	assert.NoError(err)
	assert.Equal(3, code.Len())

	res := dom.Execute(code, "12", vm.DefaultConfig())
	assert.Equal(vm.STATUS_OK, res.Status)
	assert.Equal("144", res.Output)

	var lines []int
	for lineno := range dom.Listing(code) {
		lines = append(lines, lineno)
	}
	assert.Equal([]int{1, 2, 3}, lines)

	code, err = dom.Compile("🔂🐶")
	assert.Nil(code)
	assert.ErrorIs(err, vm.ErrBlockOpen)

	res = dom.Execute(otherCode{}, "", vm.Config{})
	assert.Equal(vm.STATUS_ERROR, res.Status)
	assert.ErrorIs(res.Err, vm.ErrCodeDomain)
}

func TestDomain_Symbols(t *testing.T) {
	assert := assert.New(t)

	dom := &Domain{}
	symbols := maps.Collect(dom.Symbols())

	assert.Len(symbols, Opcodes.Len()+REGISTER_COUNT+10)
	assert.Equal("set", symbols["🌞"])
	assert.Equal("end", symbols["😐"])
	assert.Equal("0", symbols["🆚"])
	assert.Contains(symbols["🚨"], "24")
}
