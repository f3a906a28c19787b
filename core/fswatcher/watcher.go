package fswatcher

import (
	"strings"
)

type Event struct {
	Op   Op
	Name string
}

//----------

const (
	Attrib Op = 1 << iota
	Create
	Modify // write, truncate
	Remove
	Rename

	AllOps Op = Attrib | Create | Modify | Remove | Rename
)

func opsMap() map[Op]string {
	return map[Op]string{
		Attrib: "attrib",
		Create: "create",
		Remove: "remove",
		Modify: "modify",
		Rename: "rename",
	}
}

//----------

type Op uint16

func (op Op) HasAny(op2 Op) bool { return op&op2 != 0 }
func (op *Op) Add(op2 Op)        { *op |= op2 }
func (op *Op) Remove(op2 Op)     { *op &^= op2 }

func (op Op) String() string {
	m := opsMap()
	u := []string{}
	for o := Op(1); o <= Rename; o <<= 1 {
		if op.HasAny(o) {
			u = append(u, m[o])
		}
	}
	return strings.Join(u, "|")
}
