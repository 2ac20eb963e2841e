package types

// EntryKind distinguishes files from directories.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
)

func (k EntryKind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

type (
	// Entry is one immediate child of the scanned directory.
	Entry struct {
		Name string    `json:"name"`
		Kind EntryKind `json:"kind"`
	}

	// Result is the outcome of a listing run.
	Result struct {
		Items      []string `json:"items"`
		Count      int      `json:"count"`
		OutputPath string   `json:"outputPath"`
	}
)

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}
