package model

import "fmt"

// PhotoDir is a directory record of the camera listing
type PhotoDir struct {
	Name  string   `json:"name"`
	Files []string `json:"files"`
}

// PhotoListResponse is the JSON document returned by the listing resource.
// ErrCode is a pointer so that a body without errCode can be told apart from
// a zero code.
type PhotoListResponse struct {
	ErrCode *int       `json:"errCode"`
	ErrMsg  string     `json:"errMsg,omitempty"`
	Dirs    []PhotoDir `json:"dirs"`
}

// PhotoPaths flattens Dirs into "{dir}/{file}" paths, keeping the listing
// order: directories first, then files within each directory.
func (r *PhotoListResponse) PhotoPaths() []string {
	paths := []string{}
	for _, dir := range r.Dirs {
		for _, file := range dir.Files {
			paths = append(paths, fmt.Sprintf("%s/%s", dir.Name, file))
		}
	}
	return paths
}

// ListStatus tells why a photo list has the content it has
type ListStatus string

const (
	ListStatusOK               ListStatus = "ok"
	ListStatusTransportError   ListStatus = "transport_error"
	ListStatusApplicationError ListStatus = "application_error"
	ListStatusParseError       ListStatus = "parse_error"
)

// PhotoList is the outcome of a listing fetch. Paths is always empty unless
// Status is ListStatusOK.
type PhotoList struct {
	Paths   []string
	Status  ListStatus
	ErrCode int    // errCode of an application error
	ErrMsg  string // errMsg of an application error
	Err     error  // cause of a transport or parse error
}

// Len returns the number of photos
func (l *PhotoList) Len() int {
	return len(l.Paths)
}

// Last returns the final photo path in listing order. It is positional and
// does not look at capture times.
func (l *PhotoList) Last() (string, bool) {
	if len(l.Paths) == 0 {
		return "", false
	}
	return l.Paths[len(l.Paths)-1], true
}
