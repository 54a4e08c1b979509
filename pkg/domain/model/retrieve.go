package model

// RetrieveOutcome is the terminal state of a last-photo retrieval run
type RetrieveOutcome string

const (
	RetrieveProbeFailed    RetrieveOutcome = "probe_failed"
	RetrieveEmpty          RetrieveOutcome = "empty"
	RetrieveDownloaded     RetrieveOutcome = "downloaded"
	RetrieveDownloadFailed RetrieveOutcome = "download_failed"
)

// RetrieveResult reports what a retrieval run did
type RetrieveResult struct {
	Outcome  RetrieveOutcome
	Total    int
	Photo    string          // Selected photo path, empty unless a download was attempted
	Download *DownloadResult // Set when Outcome is RetrieveDownloaded
}
