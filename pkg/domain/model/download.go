package model

// DownloadResult represents a photo written to the output directory
type DownloadResult struct {
	PhotoPath string // Remote photo path, e.g. "100RICOH/R0000001.JPG"
	LocalPath string // Path of the written file
	Size      int64  // Bytes written
}
