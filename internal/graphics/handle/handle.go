// Package handle tracks GPU object names owned by a renderable and releases
// them exactly once, in the order they were registered.
package handle

// Set is an ordered list of release functions. The zero value is ready to use.
// Not safe for concurrent use; GL objects live on the context thread anyway.
type Set struct {
	names    []string
	releases []func()
	released bool
}

// Add registers a release function under a descriptive name.
// Adding to a released set releases immediately.
func (s *Set) Add(name string, release func()) {
	if release == nil {
		return
	}
	if s.released {
		release()
		return
	}
	s.names = append(s.names, name)
	s.releases = append(s.releases, release)
}

// Release runs every registered release function once, in registration order.
// Later calls do nothing.
func (s *Set) Release() {
	if s.released {
		return
	}
	s.released = true
	for _, r := range s.releases {
		r()
	}
	s.names = nil
	s.releases = nil
}

// Released reports whether Release has run.
func (s *Set) Released() bool {
	return s.released
}

// Names lists the still-owned resources, in release order.
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}
