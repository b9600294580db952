package models

// HistoryList is the global, ordered list of records across all folders.
// The newest upload sits at index 0.
type HistoryList []UploadRecord

// Clone returns a copy that can be mutated without touching l.
func (l HistoryList) Clone() HistoryList {
	if l == nil {
		return nil
	}
	out := make(HistoryList, len(l))
	copy(out, l)
	return out
}

// Folders is the ordered folder registry. The default folder comes first.
type Folders []string

// Contains reports whether name is registered (case-sensitive).
func (f Folders) Contains(name string) bool {
	return f.Index(name) >= 0
}

// Index returns the position of name or -1.
func (f Folders) Index(name string) int {
	for i, v := range f {
		if v == name {
			return i
		}
	}
	return -1
}

func (f Folders) Clone() Folders {
	out := make(Folders, len(f))
	copy(out, f)
	return out
}
