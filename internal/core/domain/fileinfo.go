package domain

import "time"

// FileInfo describes the file behind an open document, for display in
// the status bar and the info command.
type FileInfo struct {
	// Name is the base file name.
	Name string

	// Path is the full path the document was opened from.
	Path string

	// Size is the file size in bytes.
	Size int64

	// Modified is the file's last modification time.
	Modified time.Time
}

// SizeMB returns the file size in megabytes, rounded to two decimals.
func (f FileInfo) SizeMB() float64 {
	const mb = 1024 * 1024
	return float64(int64(float64(f.Size)/mb*100+0.5)) / 100
}
