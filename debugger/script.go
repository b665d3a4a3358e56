// This file is part of GopherPSX.
//
// GopherPSX is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPSX is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPSX.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"strings"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/debugger/terminal"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/registers"
	lua "github.com/yuin/gopher-lua"
)

// the maximum depth of scripts running other scripts.
const maxScriptDepth = 8

// runScript runs the named Lua script. The script has access to the
// following functions:
//
//	step([n])          step n instructions (default 1)
//	peek(addr)         read a byte of memory
//	poke(addr, value)  write a byte of memory
//	reg(r)             read a CPU register by number or name
//	setreg(r, value)   write a CPU register by number or name
//	pc()               the address of the next instruction
//	command(s)         run a debugger command
//	print(...)         print to the debugger terminal
func (dbg *Debugger) runScript(filename string) error {
	if dbg.scriptDepth >= maxScriptDepth {
		return curated.Errorf("debugger: script: too many nested scripts")
	}
	dbg.scriptDepth++
	defer func() {
		dbg.scriptDepth--
	}()

	L := lua.NewState()
	defer L.Close()

	for name, fn := range map[string]lua.LGFunction{
		"step":    dbg.luaStep,
		"peek":    dbg.luaPeek,
		"poke":    dbg.luaPoke,
		"reg":     dbg.luaReg,
		"setreg":  dbg.luaSetReg,
		"pc":      dbg.luaPC,
		"command": dbg.luaCommand,
		"print":   dbg.luaPrint,
	} {
		L.SetGlobal(name, L.NewFunction(fn))
	}

	err := L.DoFile(filename)
	if err != nil {
		return curated.Errorf("debugger: script: %v", err)
	}

	return nil
}

func (dbg *Debugger) luaStep(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for range n {
		err := dbg.step()
		if err != nil {
			L.RaiseError("%v", err)
			return 0
		}
	}
	L.Push(lua.LNumber(dbg.psx.CPU.Instructions))
	return 1
}

func (dbg *Debugger) luaPeek(L *lua.LState) int {
	address := uint32(L.CheckInt64(1))
	v, err := dbg.psx.Mem.Peek(address)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (dbg *Debugger) luaPoke(L *lua.LState) int {
	address := uint32(L.CheckInt64(1))
	value := uint8(L.CheckInt(2))
	err := dbg.psx.Mem.Poke(address, value)
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// register returns the index of the register named by the first argument.
// the argument can be the number of the register or its name.
func register(L *lua.LState) uint32 {
	if s, ok := L.Get(1).(lua.LString); ok {
		name := strings.ToLower(string(s))
		for i, n := range registers.Names {
			if n == name {
				return uint32(i)
			}
		}
		L.ArgError(1, "unknown register")
		return 0
	}
	r := L.CheckInt(1)
	if r < 0 || r >= registers.NumRegisters {
		L.ArgError(1, "register out of range")
	}
	return uint32(r)
}

func (dbg *Debugger) luaReg(L *lua.LState) int {
	r := register(L)
	L.Push(lua.LNumber(dbg.psx.CPU.Reg.Read(r)))
	return 1
}

func (dbg *Debugger) luaSetReg(L *lua.LState) int {
	r := register(L)
	dbg.psx.CPU.Reg.Write(r, uint32(L.CheckInt64(2)))
	return 0
}

func (dbg *Debugger) luaPC(L *lua.LState) int {
	L.Push(lua.LNumber(dbg.psx.CPU.PC))
	return 1
}

func (dbg *Debugger) luaCommand(L *lua.LState) int {
	err := dbg.parseCommand(L.CheckString(1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (dbg *Debugger) luaPrint(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	dbg.printLine(terminal.StyleScript, "%s", strings.Join(s, "\t"))
	return 0
}
