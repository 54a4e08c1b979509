package model

// CameraProps is the subset of /v1/props served by the emulator
type CameraProps struct {
	ErrCode int    `json:"errCode"`
	ErrMsg  string `json:"errMsg"`
	Model   string `json:"model"`
}
