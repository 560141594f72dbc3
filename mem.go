package ods

// memBacking stores the decompressed image in memory. written distinguishes
// a never-populated store from an explicitly emptied one.
type memBacking struct {
	data    []byte
	written bool
}

func (m *memBacking) load() ([]byte, bool, error) {
	return m.data, m.written, nil
}

func (m *memBacking) store(img []byte) error {
	m.data = img
	m.written = true
	return nil
}

func (m *memBacking) clear() error {
	m.data = nil
	m.written = true
	return nil
}
