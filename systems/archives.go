package systems

// ArchiveCache records archive requests and answers existence from the
// configured asset set.
type ArchiveCache struct {
	exist     map[string]bool
	seen      map[string]bool
	requested []string
}

// NewArchiveCache wraps the set of archive names that exist.
func NewArchiveCache(exist map[string]bool) *ArchiveCache {
	return &ArchiveCache{
		exist: exist,
		seen:  make(map[string]bool),
	}
}

// RequestObjectData records name once, in first-request order.
func (c *ArchiveCache) RequestObjectData(name string) {
	if name == "" || c.seen[name] {
		return
	}
	c.seen[name] = true
	c.requested = append(c.requested, name)
}

func (c *ArchiveCache) IsObjectDataExist(name string) bool {
	return c.exist[name]
}

// Requested returns the requested names in first-request order.
func (c *ArchiveCache) Requested() []string {
	return c.requested
}

// Missing returns requested names that do not exist.
func (c *ArchiveCache) Missing() []string {
	var out []string
	for _, n := range c.requested {
		if !c.exist[n] {
			out = append(out, n)
		}
	}
	return out
}
