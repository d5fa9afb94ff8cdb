package logger

import "sync"

// Capture is a Logger that records entries in memory so tests can assert on
// emitted diagnostics instead of intercepting process output.
type Capture struct {
	mu      sync.Mutex
	entries []LogEntry
}

func NewCapture() *Capture {
	return &Capture{}
}

func (c *Capture) Info(action, message, requestID string, details map[string]interface{}) {
	c.record("INFO", action, message, requestID, details, nil)
}

func (c *Capture) Debug(action, message, requestID string, details map[string]interface{}) {
	c.record("DEBUG", action, message, requestID, details, nil)
}

func (c *Capture) Error(action, message, requestID string, details map[string]interface{}, err error) {
	c.record("ERROR", action, message, requestID, details, err)
}

func (c *Capture) record(level, action, message, requestID string, details map[string]interface{}, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := LogEntry{
		Level:     level,
		Action:    action,
		Message:   message,
		RequestID: requestID,
		Details:   details,
	}
	if err != nil {
		entry.Error = &ErrorInfo{Msg: err.Error()}
	}
	c.entries = append(c.entries, entry)
}

// Entries returns a copy of everything logged so far.
func (c *Capture) Entries() []LogEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]LogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Find returns the first entry with the given action, or nil.
func (c *Capture) Find(action string) *LogEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].Action == action {
			e := c.entries[i]
			return &e
		}
	}
	return nil
}
