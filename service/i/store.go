package i

// MazeSource supplies the raw lines of a maze drawing by file name.
// The whole drawing is read into memory before parsing starts.
type MazeSource interface {
	ReadLines(name string) ([]string, error)
}

// DocumentSink persists a serialized maze document under a file name.
type DocumentSink interface {
	WriteDocument(name string, data []byte) error
}
