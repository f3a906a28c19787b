package rwedit

// Byte index into the rw. Users must keep it on a rune boundary.
type Cursor struct {
	index    int
	OnChange func()
}

func (c *Cursor) Index() int {
	return c.index
}
func (c *Cursor) SetIndex(v int) {
	changed := c.index != v
	c.index = v
	if changed && c.OnChange != nil {
		c.OnChange()
	}
}
