package generator

import "github.com/Alia5/makestatus/internal/statusxml"

// Collector records the flattened table in memory.
type Collector struct {
	Entries  []statusxml.Status
	Includes []string
}

func (c *Collector) Begin() error { return nil }

func (c *Collector) Status(_ int, s statusxml.Status) error {
	c.Entries = append(c.Entries, s)
	return nil
}

func (c *Collector) Include(path string) error {
	c.Includes = append(c.Includes, path)
	return nil
}

func (c *Collector) End() error { return nil }
