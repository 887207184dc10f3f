package writers

// Writer saves rendered files, returning where they were written.
type Writer interface {
	Write(files map[string]string) (string, error)
}
